package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/SscSPs/adops_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusByCode maps machine-readable error codes onto HTTP statuses.
var statusByCode = map[string]int{
	apperrors.CodeValidation:         http.StatusBadRequest,
	apperrors.CodeUnbalanced:         http.StatusBadRequest,
	apperrors.CodeNotFound:           http.StatusNotFound,
	apperrors.CodeDuplicatePeriod:    http.StatusConflict,
	apperrors.CodeAlreadyApproved:    http.StatusConflict,
	apperrors.CodeVoucherLocked:      http.StatusConflict,
	apperrors.CodeUnauthorized:       http.StatusUnauthorized,
	apperrors.CodeForbidden:          http.StatusForbidden,
	apperrors.CodeStorageUnavailable: http.StatusServiceUnavailable,
	apperrors.CodeInternal:           http.StatusInternalServerError,
}

// respondError writes the error body for err. Internal failures are logged
// with their cause and answered with fallback so storage details never leak.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := apperrors.Code(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	body := gin.H{"code": code, "error": err.Error()}
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error(fallback, slog.String("code", code), slog.String("error", err.Error()))
		body["error"] = fallback
	default:
		logger.Warn(fallback, slog.String("code", code), slog.String("error", err.Error()))
	}

	var unbalanced *apperrors.UnbalancedError
	if errors.As(err, &unbalanced) {
		body["diffLocal"] = unbalanced.DiffLocal
		body["diffHard"] = unbalanced.DiffHard
	}
	var conflict *apperrors.ConflictError
	if errors.As(err, &conflict) {
		body["conflictingVoucherId"] = conflict.VoucherID
		if conflict.Number != nil {
			body["conflictingNumber"] = *conflict.Number
		}
	}

	c.JSON(status, body)
}

// respondBindError answers a malformed body or query string.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"code": apperrors.CodeValidation, "error": "Invalid request format: " + err.Error()})
}

// requestScope extracts the company from the path and the caller from the
// auth context. It writes the error response itself and returns ok=false
// when either is missing.
func requestScope(c *gin.Context) (companyID int64, userID string, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"code": apperrors.CodeUnauthorized, "error": "Unauthorized"})
		return 0, "", false
	}

	companyID, err := strconv.ParseInt(c.Param("company_id"), 10, 64)
	if err != nil || companyID <= 0 {
		logger.Warn("Invalid company ID in path", slog.String("company_id", c.Param("company_id")))
		c.JSON(http.StatusBadRequest, gin.H{"code": apperrors.CodeValidation, "error": "company_id must be a positive integer"})
		return 0, "", false
	}
	return companyID, userID, true
}
