package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

func newAuditFields(userID string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// Touch records a modification by userID.
func (a *AuditFields) Touch(userID string, now time.Time) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}
