package services_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/SscSPs/adops_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/adops_erp/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- In-memory voucher store ---

// fakeVoucherStore runs every transaction under one mutex, which makes the
// store serializable. State changed by a failed transaction is rolled back.
type fakeVoucherStore struct {
	mu       sync.Mutex
	vouchers map[string]domain.Voucher
	lines    map[string][]domain.EntryLine

	// failures injects transient errors: operation name to remaining count.
	failures map[string]int
	calls    map[string]int

	// concurrent vouchers are committed by a rival transaction just before
	// the next InsertVoucher runs its unique checks. They survive rollback.
	concurrent []domain.Voucher
	committed  []domain.Voucher
}

var _ portsrepo.VoucherRepositoryWithTx = (*fakeVoucherStore)(nil)

func newFakeVoucherStore() *fakeVoucherStore {
	return &fakeVoucherStore{
		vouchers: map[string]domain.Voucher{},
		lines:    map[string][]domain.EntryLine{},
		failures: map[string]int{},
		calls:    map[string]int{},
	}
}

func (s *fakeVoucherStore) failNext(op string, times int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = times
}

func (s *fakeVoucherStore) callCount(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// put stores a voucher directly, bypassing the service.
func (s *fakeVoucherStore) put(v domain.Voucher, lines ...domain.EntryLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.Lines = nil
	s.vouchers[v.VoucherID] = v
	s.lines[v.VoucherID] = append([]domain.EntryLine(nil), lines...)
}

func (s *fakeVoucherStore) get(id string) domain.Voucher {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vouchers[id]
}

func (s *fakeVoucherStore) linesOf(id string) []domain.EntryLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.EntryLine(nil), s.lines[id]...)
}

// hit records a call and returns an injected transient failure, if any. Callers hold mu.
func (s *fakeVoucherStore) hit(op string) error {
	s.calls[op]++
	if s.failures[op] > 0 {
		s.failures[op]--
		return apperrors.NewStorageError(op, true, errors.New("could not serialize access due to concurrent update"))
	}
	return nil
}

func (s *fakeVoucherStore) WithinTx(ctx context.Context, fn func(uow portsrepo.VoucherUnitOfWork) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vouchers := make(map[string]domain.Voucher, len(s.vouchers))
	for k, v := range s.vouchers {
		vouchers[k] = v
	}
	lines := make(map[string][]domain.EntryLine, len(s.lines))
	for k, v := range s.lines {
		lines[k] = append([]domain.EntryLine(nil), v...)
	}

	err := fn(&fakeUnitOfWork{s: s})
	if err != nil {
		s.vouchers = vouchers
		s.lines = lines
	}
	for _, v := range s.committed {
		s.vouchers[v.VoucherID] = v
	}
	s.committed = nil
	return err
}

func (s *fakeVoucherStore) FindVoucherByID(ctx context.Context, companyID int64, voucherID string) (*domain.Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.hit("FindVoucherByID"); err != nil {
		return nil, err
	}
	v, ok := s.vouchers[voucherID]
	if !ok || v.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &v, nil
}

func (s *fakeVoucherStore) FindLinesByVoucherID(ctx context.Context, voucherID string) ([]domain.EntryLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLines(voucherID), nil
}

func (s *fakeVoucherStore) ListVouchersByCompany(ctx context.Context, companyID int64, filter domain.VoucherFilter, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.hit("ListVouchersByCompany"); err != nil {
		return nil, nil, err
	}
	var out []domain.Voucher
	for _, v := range s.vouchers {
		if v.CompanyID != companyID {
			continue
		}
		if filter.Status != nil && v.Status != *filter.Status {
			continue
		}
		if filter.VoucherType != nil && v.VoucherType != *filter.VoucherType {
			continue
		}
		if filter.FiscalYear != nil && v.FiscalYear != *filter.FiscalYear {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].VoucherID > out[j].VoucherID
	})
	if len(out) > limit {
		token := out[limit-1].VoucherID
		return out[:limit], &token, nil
	}
	return out, nil, nil
}

func (s *fakeVoucherStore) sortedLines(voucherID string) []domain.EntryLine {
	lines := append([]domain.EntryLine(nil), s.lines[voucherID]...)
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Position < lines[j].Position })
	return lines
}

type fakeUnitOfWork struct {
	s *fakeVoucherStore
}

func (u *fakeUnitOfWork) LockVoucher(ctx context.Context, companyID int64, voucherID string) (*domain.Voucher, error) {
	if err := u.s.hit("LockVoucher"); err != nil {
		return nil, err
	}
	v, ok := u.s.vouchers[voucherID]
	if !ok || v.CompanyID != companyID {
		return nil, fmt.Errorf("voucher %s: %w", voucherID, apperrors.ErrNotFound)
	}
	return &v, nil
}

func (u *fakeUnitOfWork) FindLines(ctx context.Context, voucherID string) ([]domain.EntryLine, error) {
	if err := u.s.hit("FindLines"); err != nil {
		return nil, err
	}
	return u.s.sortedLines(voucherID), nil
}

func (u *fakeUnitOfWork) LockPeriodScope(ctx context.Context, companyID int64, scope domain.PeriodScope) error {
	return u.s.hit("LockPeriodScope")
}

func (u *fakeUnitOfWork) FindVoucherInScope(ctx context.Context, companyID int64, scope domain.PeriodScope) (*domain.Voucher, error) {
	if err := u.s.hit("FindVoucherInScope"); err != nil {
		return nil, err
	}
	for _, v := range u.s.vouchers {
		if v.CompanyID == companyID && scope.Matches(&v) {
			return &v, nil
		}
	}
	return nil, nil
}

func (u *fakeUnitOfWork) InsertVoucher(ctx context.Context, voucher domain.Voucher) error {
	if err := u.s.hit("InsertVoucher"); err != nil {
		return err
	}
	for _, v := range u.s.concurrent {
		u.s.vouchers[v.VoucherID] = v
		u.s.committed = append(u.s.committed, v)
	}
	u.s.concurrent = nil
	if scope, ok := voucher.PeriodScope(); ok {
		for _, v := range u.s.vouchers {
			if v.CompanyID == voucher.CompanyID && scope.Matches(&v) {
				return apperrors.ErrDuplicate
			}
		}
	}
	voucher.Lines = nil
	u.s.vouchers[voucher.VoucherID] = voucher
	return nil
}

func (u *fakeUnitOfWork) LockSequence(ctx context.Context, companyID int64, voucherType domain.VoucherType) error {
	return u.s.hit("LockSequence")
}

func (u *fakeUnitOfWork) MaxApprovedNumber(ctx context.Context, companyID int64, voucherType domain.VoucherType) (int64, error) {
	if err := u.s.hit("MaxApprovedNumber"); err != nil {
		return 0, err
	}
	var max int64
	for _, v := range u.s.vouchers {
		if v.CompanyID != companyID || v.VoucherType != voucherType || v.Status != domain.StatusApproved || v.Number == nil {
			continue
		}
		n, err := domain.ParseNumber(*v.Number)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}

func (u *fakeUnitOfWork) MarkApproved(ctx context.Context, companyID int64, voucherID, number, userID string, at time.Time) error {
	if err := u.s.hit("MarkApproved"); err != nil {
		return err
	}
	v := u.s.vouchers[voucherID]
	for _, other := range u.s.vouchers {
		if other.CompanyID == companyID && other.VoucherType == v.VoucherType && other.Number != nil && *other.Number == number {
			return apperrors.ErrDuplicate
		}
	}
	if err := v.Approve(number, userID, at); err != nil {
		return err
	}
	u.s.vouchers[voucherID] = v
	return nil
}

func (u *fakeUnitOfWork) FindLineByID(ctx context.Context, voucherID, lineID string) (*domain.EntryLine, error) {
	for _, l := range u.s.lines[voucherID] {
		if l.LineID == lineID {
			return &l, nil
		}
	}
	return nil, fmt.Errorf("line %s: %w", lineID, apperrors.ErrNotFound)
}

func (u *fakeUnitOfWork) InsertLine(ctx context.Context, line domain.EntryLine) error {
	if err := u.s.hit("InsertLine"); err != nil {
		return err
	}
	u.s.lines[line.VoucherID] = append(u.s.lines[line.VoucherID], line)
	return nil
}

func (u *fakeUnitOfWork) UpdateLine(ctx context.Context, line domain.EntryLine) error {
	lines := u.s.lines[line.VoucherID]
	for i := range lines {
		if lines[i].LineID == line.LineID {
			lines[i] = line
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (u *fakeUnitOfWork) DeleteLine(ctx context.Context, voucherID, lineID string) error {
	lines := u.s.lines[voucherID]
	for i := range lines {
		if lines[i].LineID == lineID {
			u.s.lines[voucherID] = append(lines[:i:i], lines[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("line %s: %w", lineID, apperrors.ErrNotFound)
}

func (u *fakeUnitOfWork) TouchVoucher(ctx context.Context, voucherID, userID string, at time.Time) error {
	v := u.s.vouchers[voucherID]
	v.Touch(userID, at)
	u.s.vouchers[voucherID] = v
	return nil
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, companyID int64, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, companyID int64, code string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock AuxiliaryRepository ---
type MockAuxiliaryRepository struct {
	mock.Mock
}

var _ portsrepo.AuxiliaryRepositoryFacade = (*MockAuxiliaryRepository)(nil)

func (m *MockAuxiliaryRepository) FindAuxiliaryByTypeCode(ctx context.Context, companyID int64, auxType, code string) (*domain.Auxiliary, error) {
	args := m.Called(ctx, companyID, auxType, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Auxiliary), args.Error(1)
}

func (m *MockAuxiliaryRepository) FindAuxiliaryByAccountCode(ctx context.Context, companyID int64, accountCode, code string) (*domain.Auxiliary, error) {
	args := m.Called(ctx, companyID, accountCode, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Auxiliary), args.Error(1)
}

func (m *MockAuxiliaryRepository) SaveAuxiliary(ctx context.Context, aux domain.Auxiliary) error {
	args := m.Called(ctx, aux)
	return args.Error(0)
}

// --- Mock PermissionRepository ---
type MockPermissionRepository struct {
	mock.Mock
}

var _ portsrepo.PermissionRepositoryFacade = (*MockPermissionRepository)(nil)

func (m *MockPermissionRepository) HasPermission(ctx context.Context, companyID int64, userID string, module domain.PermissionModule, action domain.PermissionAction) (bool, error) {
	args := m.Called(ctx, companyID, userID, module, action)
	return args.Bool(0), args.Error(1)
}

// --- Mock PermissionAuthorizer ---
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) RequirePermission(ctx context.Context, companyID int64, userID string, module domain.PermissionModule, action domain.PermissionAction) error {
	args := m.Called(ctx, companyID, userID, module, action)
	return args.Error(0)
}
