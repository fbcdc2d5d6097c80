package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/SscSPs/adops_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/adops_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/adops_erp/internal/core/ports/services"
	"github.com/SscSPs/adops_erp/internal/dto"
	"github.com/SscSPs/adops_erp/internal/utils"
	"github.com/google/uuid"
)

const maxDerivedCodeAttempts = 3

type auxiliaryService struct {
	BaseService
	accountRepo   portsrepo.AccountReader
	auxiliaryRepo portsrepo.AuxiliaryRepositoryFacade
	retry         RetryPolicy
	now           func() time.Time
	suffix        func() (string, error)
}

// AuxiliaryServiceOption configures an auxiliaryService.
type AuxiliaryServiceOption func(*auxiliaryService)

// WithAuxiliaryAuthorizer sets the permission gate.
func WithAuxiliaryAuthorizer(authorizer portssvc.PermissionAuthorizerSvc) AuxiliaryServiceOption {
	return func(s *auxiliaryService) {
		s.Authorizer = authorizer
	}
}

// WithAuxiliaryRetryPolicy overrides the retry policy for transient storage errors.
func WithAuxiliaryRetryPolicy(policy RetryPolicy) AuxiliaryServiceOption {
	return func(s *auxiliaryService) {
		s.retry = policy
	}
}

// WithCodeSuffix overrides the random suffix appended to derived codes.
func WithCodeSuffix(suffix func() (string, error)) AuxiliaryServiceOption {
	return func(s *auxiliaryService) {
		s.suffix = suffix
	}
}

// NewAuxiliaryService creates a new AuxiliarySvcFacade.
func NewAuxiliaryService(accountRepo portsrepo.AccountReader, auxiliaryRepo portsrepo.AuxiliaryRepositoryFacade, options ...AuxiliaryServiceOption) portssvc.AuxiliarySvcFacade {
	s := &auxiliaryService{
		accountRepo:   accountRepo,
		auxiliaryRepo: auxiliaryRepo,
		retry:         DefaultRetryPolicy(),
		now:           func() time.Time { return time.Now().UTC() },
		suffix:        func() (string, error) { return utils.RandomHex(2) },
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var _ portssvc.AuxiliarySvcFacade = (*auxiliaryService)(nil)

// EnsureAuxiliary finds the auxiliary identified by (type, code) or creates
// it under the given account. Without a code, one is derived from type and
// name with a random suffix; a clash on the derived code draws a new suffix.
func (s *auxiliaryService) EnsureAuxiliary(ctx context.Context, companyID int64, req dto.EnsureAuxiliaryRequest, userID string) (*domain.Auxiliary, error) {
	logger := s.GetLogger(ctx)

	if err := s.Authorize(ctx, companyID, userID, domain.ActionCreate); err != nil {
		return nil, err
	}
	auxType := strings.TrimSpace(req.Type)
	name := strings.TrimSpace(req.Name)
	if auxType == "" || name == "" {
		return nil, fmt.Errorf("%w: type and name are required", apperrors.ErrValidation)
	}

	var account *domain.Account
	err := retryStorage(ctx, s.retry, "find account", func() error {
		var err error
		account, err = s.accountRepo.FindAccountByID(ctx, companyID, req.AccountID)
		return err
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for auxiliary", slog.String("account_id", req.AccountID), slog.Int64("company_id", companyID))
			return nil, fmt.Errorf("account %s: %w", req.AccountID, err)
		}
		s.LogError(ctx, err, "Failed to find account for auxiliary", slog.String("account_id", req.AccountID))
		return nil, err
	}

	if req.Code != nil && strings.TrimSpace(*req.Code) != "" {
		return s.findOrCreate(ctx, account, auxType, strings.ToUpper(strings.TrimSpace(*req.Code)), name, userID)
	}

	for attempt := 1; ; attempt++ {
		suffix, err := s.suffix()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to derive auxiliary code: %v", apperrors.ErrInternal, err)
		}
		aux := s.newAuxiliary(account, auxType, domain.DeriveAuxiliaryCode(auxType, name, suffix), name, userID)
		err = s.save(ctx, aux)
		if err == nil {
			s.LogInfo(ctx, "Auxiliary created", slog.String("auxiliary_id", aux.AuxiliaryID), slog.String("code", aux.Code))
			return &aux, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) || attempt == maxDerivedCodeAttempts {
			s.LogError(ctx, err, "Failed to create auxiliary", slog.String("code", aux.Code))
			return nil, err
		}
		logger.Debug("Derived auxiliary code taken, drawing a new suffix", slog.String("code", aux.Code))
	}
}

func (s *auxiliaryService) findOrCreate(ctx context.Context, account *domain.Account, auxType, code, name, userID string) (*domain.Auxiliary, error) {
	existing, err := s.find(ctx, account.CompanyID, auxType, code)
	if err == nil {
		s.LogDebug(ctx, "Auxiliary already exists", slog.String("auxiliary_id", existing.AuxiliaryID))
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	aux := s.newAuxiliary(account, auxType, code, name, userID)
	err = s.save(ctx, aux)
	if errors.Is(err, apperrors.ErrDuplicate) {
		// a concurrent caller created it first
		return s.find(ctx, account.CompanyID, auxType, code)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to create auxiliary", slog.String("code", code))
		return nil, err
	}
	s.LogInfo(ctx, "Auxiliary created", slog.String("auxiliary_id", aux.AuxiliaryID), slog.String("code", code))
	return &aux, nil
}

func (s *auxiliaryService) find(ctx context.Context, companyID int64, auxType, code string) (*domain.Auxiliary, error) {
	var aux *domain.Auxiliary
	err := retryStorage(ctx, s.retry, "find auxiliary", func() error {
		var err error
		aux, err = s.auxiliaryRepo.FindAuxiliaryByTypeCode(ctx, companyID, auxType, code)
		return err
	})
	return aux, err
}

func (s *auxiliaryService) save(ctx context.Context, aux domain.Auxiliary) error {
	return retryStorage(ctx, s.retry, "save auxiliary", func() error {
		return s.auxiliaryRepo.SaveAuxiliary(ctx, aux)
	})
}

func (s *auxiliaryService) newAuxiliary(account *domain.Account, auxType, code, name, userID string) domain.Auxiliary {
	now := s.now()
	return domain.Auxiliary{
		AuxiliaryID: uuid.NewString(),
		CompanyID:   account.CompanyID,
		AccountID:   account.AccountID,
		AccountCode: account.Code,
		Type:        auxType,
		Code:        code,
		Name:        name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}
