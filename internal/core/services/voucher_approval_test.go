package services_test

import (
	"sort"
	"sync"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/SscSPs/adops_erp/internal/core/domain"
)

func (s *VoucherServiceTestSuite) approve(voucherID string) (*domain.Voucher, error) {
	return s.svc.Approve(s.ctx, testCompanyID, voucherID, testUserID)
}

func (s *VoucherServiceTestSuite) TestApprove_AssignsCorrelativeNumbersPerType() {
	first := s.seedDraft(domain.TypeDiary, balancedLines()...)
	second := s.seedDraft(domain.TypeDiary, balancedLines()...)
	income := s.seedDraft(domain.TypeIncome, balancedLines()...)

	v, err := s.approve(first.VoucherID)
	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, v.Status)
	s.Require().NotNil(v.Number)
	s.Equal("001", *v.Number)
	s.Equal(testUserID, *v.ApprovedBy)
	s.Equal(fixedTime, *v.ApprovedAt)
	s.Len(v.Lines, 2)

	v, err = s.approve(second.VoucherID)
	s.Require().NoError(err)
	s.Equal("002", *v.Number)

	v, err = s.approve(income.VoucherID)
	s.Require().NoError(err)
	s.Equal("001", *v.Number)

	stored := s.store.get(second.VoucherID)
	s.Equal(domain.StatusApproved, stored.Status)
	s.Equal("002", *stored.Number)
}

func (s *VoucherServiceTestSuite) TestApprove_DraftsDoNotConsumeNumbers() {
	s.seedDraft(domain.TypeDiary, balancedLines()...)
	target := s.seedDraft(domain.TypeDiary, balancedLines()...)

	v, err := s.approve(target.VoucherID)
	s.Require().NoError(err)
	s.Equal("001", *v.Number)
}

func (s *VoucherServiceTestSuite) TestApprove_NumbersCompareNumerically() {
	for _, n := range []string{"999", "85"} {
		old := s.seedDraft(domain.TypeDiary)
		stored := s.store.get(old.VoucherID)
		s.Require().NoError(stored.Approve(n, testUserID, fixedTime))
		s.store.put(stored)
	}
	target := s.seedDraft(domain.TypeDiary, balancedLines()...)

	v, err := s.approve(target.VoucherID)
	s.Require().NoError(err)
	s.Equal("1000", *v.Number)
}

func (s *VoucherServiceTestSuite) TestApprove_UnbalancedIsRejected() {
	v := s.seedDraft(domain.TypeDiary,
		domain.LineInput{AccountCode: "5.1.01", DebitLocal: amount("1000.00"), DebitHard: amount("143.68")},
		domain.LineInput{AccountCode: "1.1.01", CreditLocal: amount("990.00"), CreditHard: amount("143.68")},
	)

	_, err := s.approve(v.VoucherID)
	s.Require().Error(err)
	s.Equal(apperrors.CodeUnbalanced, apperrors.Code(err))

	var unbalanced *apperrors.UnbalancedError
	s.Require().ErrorAs(err, &unbalanced)
	s.True(unbalanced.DiffLocal.Equal(amount("10.00")))
	s.True(unbalanced.DiffHard.IsZero())

	stored := s.store.get(v.VoucherID)
	s.Equal(domain.StatusDraft, stored.Status)
	s.Nil(stored.Number)
	s.Zero(s.store.callCount("LockSequence"))
}

func (s *VoucherServiceTestSuite) TestApprove_WithinToleranceIsBalanced() {
	v := s.seedDraft(domain.TypeDiary,
		domain.LineInput{AccountCode: "5.1.01", DebitLocal: amount("100.00"), DebitHard: amount("14.37")},
		domain.LineInput{AccountCode: "1.1.01", CreditLocal: amount("99.99"), CreditHard: amount("14.37")},
	)

	approved, err := s.approve(v.VoucherID)
	s.Require().NoError(err)
	s.Equal("001", *approved.Number)
}

func (s *VoucherServiceTestSuite) TestApprove_NoLinesIsUnbalanced() {
	v := s.seedDraft(domain.TypeDiary)

	_, err := s.approve(v.VoucherID)
	s.ErrorIs(err, apperrors.ErrUnbalanced)
	var unbalanced *apperrors.UnbalancedError
	s.Require().ErrorAs(err, &unbalanced)
	s.True(unbalanced.Empty)
}

func (s *VoucherServiceTestSuite) TestApprove_AlreadyApproved() {
	v := s.seedDraft(domain.TypeDiary, balancedLines()...)
	_, err := s.approve(v.VoucherID)
	s.Require().NoError(err)

	_, err = s.approve(v.VoucherID)
	s.Require().Error(err)
	s.Equal(apperrors.CodeAlreadyApproved, apperrors.Code(err))

	var conflict *apperrors.ConflictError
	s.Require().ErrorAs(err, &conflict)
	s.Require().NotNil(conflict.Number)
	s.Equal("001", *conflict.Number)
	s.Equal("001", *s.store.get(v.VoucherID).Number)
}

func (s *VoucherServiceTestSuite) TestApprove_NotFound() {
	_, err := s.approve("missing")
	s.ErrorIs(err, apperrors.ErrNotFound)

	v := s.seedDraft(domain.TypeDiary, balancedLines()...)
	_, err = s.svc.Approve(s.ctx, 42, v.VoucherID, testUserID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *VoucherServiceTestSuite) TestApprove_TransientFailureDoesNotSkipNumbers() {
	v := s.seedDraft(domain.TypeDiary, balancedLines()...)
	s.store.failNext("MarkApproved", 2)

	approved, err := s.approve(v.VoucherID)
	s.Require().NoError(err)
	s.Equal("001", *approved.Number)
	s.Equal(3, s.store.callCount("MarkApproved"))
}

func (s *VoucherServiceTestSuite) TestApprove_ConcurrentApprovalsGetDistinctNumbers() {
	const n = 20
	ids := make([]string, n)
	for i := range ids {
		ids[i] = s.seedDraft(domain.TypeDiary, balancedLines()...).VoucherID
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers []string
		errs    []error
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			v, err := s.svc.Approve(s.ctx, testCompanyID, id, testUserID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			numbers = append(numbers, *v.Number)
		}(id)
	}
	wg.Wait()

	s.Empty(errs)
	sort.Strings(numbers)
	expected := make([]string, n)
	for i := range expected {
		expected[i] = domain.FormatNumber(int64(i + 1))
	}
	s.Equal(expected, numbers)
}

func (s *VoucherServiceTestSuite) TestApprove_SameVoucherConcurrentlyApprovesOnce() {
	v := s.seedDraft(domain.TypeDiary, balancedLines()...)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.Approve(s.ctx, testCompanyID, v.VoucherID, testUserID)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if apperrors.Code(err) == apperrors.CodeAlreadyApproved {
				conflicts++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, succeeded)
	s.Equal(4, conflicts)
	s.Equal("001", *s.store.get(v.VoucherID).Number)
}
