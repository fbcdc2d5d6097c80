package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/SscSPs/adops_erp/internal/core/domain"
	portssvc "github.com/SscSPs/adops_erp/internal/core/ports/services"
	"github.com/SscSPs/adops_erp/internal/dto"
	"github.com/SscSPs/adops_erp/internal/handlers"
	"github.com/SscSPs/adops_erp/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock VoucherService ---
type MockVoucherService struct {
	mock.Mock
}

func (m *MockVoucherService) CreateDraft(ctx context.Context, companyID int64, spec domain.DraftSpec, userID string) (*domain.Voucher, error) {
	args := m.Called(ctx, companyID, spec, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}
func (m *MockVoucherService) Approve(ctx context.Context, companyID int64, voucherID string, userID string) (*domain.Voucher, error) {
	args := m.Called(ctx, companyID, voucherID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}
func (m *MockVoucherService) GetVoucher(ctx context.Context, companyID int64, voucherID string, userID string) (*domain.Voucher, error) {
	args := m.Called(ctx, companyID, voucherID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}
func (m *MockVoucherService) ListVouchers(ctx context.Context, companyID int64, userID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	args := m.Called(ctx, companyID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListVouchersResponse), args.Error(1)
}
func (m *MockVoucherService) CheckBalance(ctx context.Context, companyID int64, voucherID string, userID string) (*domain.BalanceResult, error) {
	args := m.Called(ctx, companyID, voucherID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceResult), args.Error(1)
}
func (m *MockVoucherService) AddLine(ctx context.Context, companyID int64, voucherID string, in domain.LineInput, userID string) (*domain.EntryLine, error) {
	args := m.Called(ctx, companyID, voucherID, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntryLine), args.Error(1)
}
func (m *MockVoucherService) UpdateLine(ctx context.Context, companyID int64, voucherID, lineID string, in domain.LineInput, userID string) (*domain.EntryLine, error) {
	args := m.Called(ctx, companyID, voucherID, lineID, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntryLine), args.Error(1)
}
func (m *MockVoucherService) DeleteLine(ctx context.Context, companyID int64, voucherID, lineID string, userID string) error {
	args := m.Called(ctx, companyID, voucherID, lineID, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.VoucherSvcFacade = (*MockVoucherService)(nil)

// --- Mock AuxiliaryService ---
type MockAuxiliaryService struct {
	mock.Mock
}

func (m *MockAuxiliaryService) EnsureAuxiliary(ctx context.Context, companyID int64, req dto.EnsureAuxiliaryRequest, userID string) (*domain.Auxiliary, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Auxiliary), args.Error(1)
}

var _ portssvc.AuxiliarySvcFacade = (*MockAuxiliaryService)(nil)

// --- Test Suite ---
type VoucherHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	vouchers     *MockVoucherService
	auxiliaries  *MockAuxiliaryService
	jwtSecret    string
	userID       string
	companyID    int64
	basePath     string
	bearerHeader string
}

func (suite *VoucherHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "adops-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *VoucherHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = "user-accountant"
	suite.companyID = 7
	suite.basePath = fmt.Sprintf("/api/v1/companies/%d", suite.companyID)
	suite.bearerHeader = "Bearer " + suite.generateTestToken(suite.userID)

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.vouchers = new(MockVoucherService)
	suite.auxiliaries = new(MockAuxiliaryService)

	company := suite.router.Group("/api/v1/companies/:company_id")
	handlers.RegisterVoucherRoutes(company, suite.vouchers, suite.auxiliaries)
}

func (suite *VoucherHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, suite.basePath+path, &buf)
	req.Header.Set("Authorization", suite.bearerHeader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *VoucherHandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func draftVoucher(id string) *domain.Voucher {
	return &domain.Voucher{
		VoucherID:    id,
		CompanyID:    7,
		Status:       domain.StatusDraft,
		Origin:       domain.OriginAccounting,
		VoucherType:  domain.TypeDiary,
		EntryKind:    domain.KindNormal,
		Date:         time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Period:       3,
		FiscalYear:   2025,
		Currency:     "BOB",
		ExchangeRate: decimal.RequireFromString("6.96"),
	}
}

// --- Test Cases ---

func (suite *VoucherHandlerTestSuite) TestCreateManualVoucher_Success() {
	suite.vouchers.On("CreateDraft", mock.Anything, suite.companyID,
		mock.MatchedBy(func(spec domain.DraftSpec) bool {
			manual, ok := spec.(domain.ManualDraft)
			return ok && manual.VoucherType == domain.TypeDiary && manual.Concept == "Office rent"
		}),
		suite.userID,
	).Return(draftVoucher("v-1"), nil).Once()

	w := suite.do(http.MethodPost, "/vouchers/manual", gin.H{
		"voucherType":  "Diary",
		"date":         "2025-03-14T00:00:00Z",
		"exchangeRate": "6.96",
		"concept":      "Office rent",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.VoucherResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("v-1", resp.VoucherID)
	suite.Equal(domain.StatusDraft, resp.Status)
	suite.Nil(resp.Number)
	suite.vouchers.AssertExpectations(suite.T())
}

func (suite *VoucherHandlerTestSuite) TestCreateManualVoucher_UnknownTypeIsRejected() {
	w := suite.do(http.MethodPost, "/vouchers/manual", gin.H{
		"voucherType": "Barter",
		"date":        "2025-03-14T00:00:00Z",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(apperrors.CodeValidation, suite.decode(w)["code"])
	suite.vouchers.AssertNotCalled(suite.T(), "CreateDraft", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherHandlerTestSuite) TestCreateAITBVoucher_PeriodOutOfRange() {
	w := suite.do(http.MethodPost, "/vouchers/aitb", gin.H{
		"bankAccountRef": "BNB-001",
		"fiscalYear":     2025,
		"period":         13,
		"dateFrom":       "2025-03-01T00:00:00Z",
		"dateTo":         "2025-03-31T00:00:00Z",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.vouchers.AssertNotCalled(suite.T(), "CreateDraft", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherHandlerTestSuite) TestCreateOpeningVoucher_DuplicatePeriod() {
	number := "004"
	conflict := &apperrors.ConflictError{Reason: apperrors.ErrDuplicatePeriod, VoucherID: "v-existing", Number: &number}
	suite.vouchers.On("CreateDraft", mock.Anything, suite.companyID, mock.AnythingOfType("domain.OpeningDraft"), suite.userID).
		Return(nil, conflict).Once()

	w := suite.do(http.MethodPost, "/vouchers/opening", gin.H{
		"fiscalYear": 2025,
		"date":       "2025-01-01T00:00:00Z",
	})

	suite.Equal(http.StatusConflict, w.Code)
	body := suite.decode(w)
	suite.Equal(apperrors.CodeDuplicatePeriod, body["code"])
	suite.Equal("v-existing", body["conflictingVoucherId"])
	suite.Equal("004", body["conflictingNumber"])
}

func (suite *VoucherHandlerTestSuite) TestApproveVoucher() {
	approved := draftVoucher("v-1")
	number := "001"
	approved.Status = domain.StatusApproved
	approved.Number = &number

	tests := []struct {
		name       string
		result     *domain.Voucher
		err        error
		wantStatus int
		wantCode   string
	}{
		{"approved", approved, nil, http.StatusOK, ""},
		{"unbalanced", nil, &apperrors.UnbalancedError{DiffLocal: decimal.RequireFromString("10.00"), DiffHard: decimal.Zero}, http.StatusBadRequest, apperrors.CodeUnbalanced},
		{"already approved", nil, &apperrors.ConflictError{Reason: apperrors.ErrAlreadyApproved, VoucherID: "v-1", Number: &number}, http.StatusConflict, apperrors.CodeAlreadyApproved},
		{"not found", nil, fmt.Errorf("voucher v-1: %w", apperrors.ErrNotFound), http.StatusNotFound, apperrors.CodeNotFound},
		{"forbidden", nil, apperrors.ErrForbidden, http.StatusForbidden, apperrors.CodeForbidden},
		{"storage unavailable", nil, fmt.Errorf("approve: %w", apperrors.ErrStorageUnavailable), http.StatusServiceUnavailable, apperrors.CodeStorageUnavailable},
		{"storage failure", nil, apperrors.NewStorageError("mark approved", false, fmt.Errorf("connection reset")), http.StatusServiceUnavailable, apperrors.CodeStorageUnavailable},
		{"internal", nil, fmt.Errorf("%w: connection reset", apperrors.ErrInternal), http.StatusInternalServerError, apperrors.CodeInternal},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			if tt.err != nil {
				suite.vouchers.On("Approve", mock.Anything, suite.companyID, "v-1", suite.userID).Return(nil, tt.err).Once()
			} else {
				suite.vouchers.On("Approve", mock.Anything, suite.companyID, "v-1", suite.userID).Return(tt.result, nil).Once()
			}

			w := suite.do(http.MethodPost, "/vouchers/v-1/approve", nil)

			suite.Equal(tt.wantStatus, w.Code)
			body := suite.decode(w)
			if tt.wantCode == "" {
				suite.Equal("001", body["number"])
				return
			}
			suite.Equal(tt.wantCode, body["code"])
			if tt.wantCode == apperrors.CodeUnbalanced {
				suite.Equal("10", body["diffLocal"])
			}
			if tt.wantStatus >= http.StatusInternalServerError {
				suite.NotContains(body["error"], "connection reset")
			}
		})
	}
}

func (suite *VoucherHandlerTestSuite) TestListVouchers_PassesFilters() {
	suite.vouchers.On("ListVouchers", mock.Anything, suite.companyID, suite.userID,
		mock.MatchedBy(func(p dto.ListVouchersParams) bool {
			return p.Limit == 5 && p.Status != nil && *p.Status == domain.StatusApproved && p.FiscalYear != nil && *p.FiscalYear == 2025
		}),
	).Return(&dto.ListVouchersResponse{Vouchers: []dto.VoucherResponse{dto.ToVoucherResponse(draftVoucher("v-9"))}}, nil).Once()

	w := suite.do(http.MethodGet, "/vouchers?limit=5&status=Approved&fiscalYear=2025", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListVouchersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Vouchers, 1)
	suite.vouchers.AssertExpectations(suite.T())
}

func (suite *VoucherHandlerTestSuite) TestListVouchers_InvalidStatus() {
	w := suite.do(http.MethodGet, "/vouchers?status=Posted", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *VoucherHandlerTestSuite) TestCheckBalance() {
	suite.vouchers.On("CheckBalance", mock.Anything, suite.companyID, "v-1", suite.userID).
		Return(&domain.BalanceResult{LineCount: 2, DiffLocal: decimal.Zero, DiffHard: decimal.Zero, Balanced: true}, nil).Once()

	w := suite.do(http.MethodGet, "/vouchers/v-1/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Equal(true, body["balanced"])
	suite.Equal("v-1", body["voucherID"])
}

func (suite *VoucherHandlerTestSuite) TestAddLine_LockedVoucher() {
	suite.vouchers.On("AddLine", mock.Anything, suite.companyID, "v-1",
		mock.MatchedBy(func(in domain.LineInput) bool {
			return in.AccountCode == "1.1.01" && in.DebitLocal.Equal(decimal.RequireFromString("100")) && in.AuxiliaryCode == nil
		}),
		suite.userID,
	).Return(nil, fmt.Errorf("%w: voucher v-1 is Approved", apperrors.ErrVoucherLocked)).Once()

	w := suite.do(http.MethodPost, "/vouchers/v-1/lines", gin.H{
		"accountCode":   "1.1.01",
		"auxiliaryCode": "",
		"debitLocal":    "100",
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal(apperrors.CodeVoucherLocked, suite.decode(w)["code"])
	suite.vouchers.AssertExpectations(suite.T())
}

func (suite *VoucherHandlerTestSuite) TestDeleteLine() {
	suite.vouchers.On("DeleteLine", mock.Anything, suite.companyID, "v-1", "l-1", suite.userID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/vouchers/v-1/lines/l-1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.vouchers.AssertExpectations(suite.T())
}

func (suite *VoucherHandlerTestSuite) TestEnsureAuxiliary() {
	req := dto.EnsureAuxiliaryRequest{AccountID: "acc-1", Type: "Client", Name: "Radio Activa"}
	suite.auxiliaries.On("EnsureAuxiliary", mock.Anything, suite.companyID, req, suite.userID).
		Return(&domain.Auxiliary{AuxiliaryID: "aux-1", AccountID: "acc-1", Type: "Client", Code: "CLIRADIA1B2", Name: "Radio Activa"}, nil).Once()

	w := suite.do(http.MethodPost, "/auxiliaries", req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("CLIRADIA1B2", suite.decode(w)["code"])
}

func (suite *VoucherHandlerTestSuite) TestInvalidCompanyID() {
	suite.basePath = "/api/v1/companies/abc"
	w := suite.do(http.MethodGet, "/vouchers/v-1", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.vouchers.AssertNotCalled(suite.T(), "GetVoucher", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherHandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, suite.basePath+"/vouchers", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal(apperrors.CodeUnauthorized, suite.decode(w)["code"])
}

// --- Run Test Suite ---
func TestVoucherHandler(t *testing.T) {
	suite.Run(t, new(VoucherHandlerTestSuite))
}
