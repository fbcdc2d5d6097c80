package services_test

import (
	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/SscSPs/adops_erp/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

func (s *VoucherServiceTestSuite) expectAccount(code string, active bool) {
	s.accounts.On("FindAccountByCode", mock.Anything, testCompanyID, code).
		Return(&domain.Account{AccountID: "acc-" + code, CompanyID: testCompanyID, Code: code, IsActive: active}, nil)
}

func (s *VoucherServiceTestSuite) TestAddLine_AppendsAtNextPosition() {
	v := s.seedDraft(domain.TypeDiary)
	s.expectAccount("5.1.01", true)
	s.expectAccount("1.1.01", true)

	first, err := s.svc.AddLine(s.ctx, testCompanyID, v.VoucherID, domain.LineInput{AccountCode: "5.1.01", DebitLocal: amount("696"), DebitHard: amount("100")}, "user-editor")
	s.Require().NoError(err)
	s.Equal(0, first.Position)

	second, err := s.svc.AddLine(s.ctx, testCompanyID, v.VoucherID, domain.LineInput{AccountCode: "1.1.01", CreditLocal: amount("696"), CreditHard: amount("100")}, "user-editor")
	s.Require().NoError(err)
	s.Equal(1, second.Position)

	s.Len(s.store.linesOf(v.VoucherID), 2)
	s.Equal("user-editor", s.store.get(v.VoucherID).LastUpdatedBy)

	approved, err := s.approve(v.VoucherID)
	s.Require().NoError(err)
	s.Equal("001", *approved.Number)
	s.accounts.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestAddLine_ApprovedVoucherIsLocked() {
	v := s.seedDraft(domain.TypeDiary, balancedLines()...)
	_, err := s.approve(v.VoucherID)
	s.Require().NoError(err)
	s.expectAccount("5.1.01", true)

	_, err = s.svc.AddLine(s.ctx, testCompanyID, v.VoucherID, domain.LineInput{AccountCode: "5.1.01", DebitLocal: amount("1")}, testUserID)
	s.ErrorIs(err, apperrors.ErrVoucherLocked)
	s.Equal(apperrors.CodeVoucherLocked, apperrors.Code(err))
	s.Len(s.store.linesOf(v.VoucherID), 2)

	lineID := s.store.linesOf(v.VoucherID)[0].LineID
	_, err = s.svc.UpdateLine(s.ctx, testCompanyID, v.VoucherID, lineID, domain.LineInput{AccountCode: "5.1.01", DebitLocal: amount("1")}, testUserID)
	s.ErrorIs(err, apperrors.ErrVoucherLocked)

	err = s.svc.DeleteLine(s.ctx, testCompanyID, v.VoucherID, lineID, testUserID)
	s.ErrorIs(err, apperrors.ErrVoucherLocked)
	s.Len(s.store.linesOf(v.VoucherID), 2)
}

func (s *VoucherServiceTestSuite) TestAddLine_InvalidInputSkipsStorage() {
	v := s.seedDraft(domain.TypeDiary)

	_, err := s.svc.AddLine(s.ctx, testCompanyID, v.VoucherID, domain.LineInput{AccountCode: "5.1.01", DebitLocal: amount("5"), CreditLocal: amount("5")}, testUserID)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Zero(s.store.callCount("LockVoucher"))
	s.accounts.AssertNotCalled(s.T(), "FindAccountByCode", mock.Anything, mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestAddLine_SubCentAmountsAreRejected() {
	v := s.seedDraft(domain.TypeDiary)

	_, err := s.svc.AddLine(s.ctx, testCompanyID, v.VoucherID, domain.LineInput{AccountCode: "5.1.01", DebitLocal: amount("0.004"), DebitHard: amount("0.001")}, testUserID)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Empty(s.store.linesOf(v.VoucherID))
	s.Zero(s.store.callCount("InsertLine"))
}

func (s *VoucherServiceTestSuite) TestAddLine_UnknownAccount() {
	v := s.seedDraft(domain.TypeDiary)
	s.accounts.On("FindAccountByCode", mock.Anything, testCompanyID, "9.9.99").Return(nil, apperrors.ErrNotFound)

	_, err := s.svc.AddLine(s.ctx, testCompanyID, v.VoucherID, domain.LineInput{AccountCode: "9.9.99", DebitLocal: amount("5")}, testUserID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Zero(s.store.callCount("LockVoucher"))
}

func (s *VoucherServiceTestSuite) TestAddLine_InactiveAccount() {
	v := s.seedDraft(domain.TypeDiary)
	s.expectAccount("1.9.01", false)

	_, err := s.svc.AddLine(s.ctx, testCompanyID, v.VoucherID, domain.LineInput{AccountCode: "1.9.01", DebitLocal: amount("5")}, testUserID)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *VoucherServiceTestSuite) TestAddLine_AuxiliaryMustBelongToAccount() {
	v := s.seedDraft(domain.TypeDiary)
	s.expectAccount("1.1.03", true)
	known, unknown := "CLIRADIA1B2", "CLIXXXX0000"
	s.auxes.On("FindAuxiliaryByAccountCode", mock.Anything, testCompanyID, "1.1.03", known).
		Return(&domain.Auxiliary{AuxiliaryID: "aux-1", AccountCode: "1.1.03", Code: known}, nil)
	s.auxes.On("FindAuxiliaryByAccountCode", mock.Anything, testCompanyID, "1.1.03", unknown).
		Return(nil, apperrors.ErrNotFound)

	line, err := s.svc.AddLine(s.ctx, testCompanyID, v.VoucherID, domain.LineInput{AccountCode: "1.1.03", AuxiliaryCode: &known, DebitLocal: amount("5")}, testUserID)
	s.Require().NoError(err)
	s.Equal(known, *line.AuxiliaryCode)

	_, err = s.svc.AddLine(s.ctx, testCompanyID, v.VoucherID, domain.LineInput{AccountCode: "1.1.03", AuxiliaryCode: &unknown, DebitLocal: amount("5")}, testUserID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Len(s.store.linesOf(v.VoucherID), 1)
	s.auxes.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestUpdateLine_FixesImbalance() {
	v := s.seedDraft(domain.TypeDiary,
		domain.LineInput{AccountCode: "5.1.01", DebitLocal: amount("100.00"), DebitHard: amount("14.37")},
		domain.LineInput{AccountCode: "1.1.01", CreditLocal: amount("90.00"), CreditHard: amount("14.37")},
	)
	s.expectAccount("1.1.01", true)
	lineID := s.store.linesOf(v.VoucherID)[1].LineID

	_, err := s.approve(v.VoucherID)
	s.Require().ErrorIs(err, apperrors.ErrUnbalanced)

	updated, err := s.svc.UpdateLine(s.ctx, testCompanyID, v.VoucherID, lineID, domain.LineInput{AccountCode: "1.1.01", CreditLocal: amount("100.00"), CreditHard: amount("14.37")}, testUserID)
	s.Require().NoError(err)
	s.True(updated.CreditLocal.Equal(amount("100.00")))
	s.Equal(1, updated.Position)

	approved, err := s.approve(v.VoucherID)
	s.Require().NoError(err)
	s.Equal("001", *approved.Number)
}

func (s *VoucherServiceTestSuite) TestUpdateLine_UnknownLine() {
	v := s.seedDraft(domain.TypeDiary)
	s.expectAccount("1.1.01", true)

	_, err := s.svc.UpdateLine(s.ctx, testCompanyID, v.VoucherID, "missing", domain.LineInput{AccountCode: "1.1.01", CreditLocal: amount("1")}, testUserID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *VoucherServiceTestSuite) TestDeleteLine() {
	v := s.seedDraft(domain.TypeDiary, balancedLines()...)
	lineID := s.store.linesOf(v.VoucherID)[0].LineID

	s.Require().NoError(s.svc.DeleteLine(s.ctx, testCompanyID, v.VoucherID, lineID, testUserID))
	s.Len(s.store.linesOf(v.VoucherID), 1)

	err := s.svc.DeleteLine(s.ctx, testCompanyID, v.VoucherID, lineID, testUserID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.approve(v.VoucherID)
	s.ErrorIs(err, apperrors.ErrUnbalanced)
}
