//go:build unit

package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"flash-sale-api/internal/infra/db"
	"flash-sale-api/internal/pkg/clock"
	"flash-sale-api/internal/pkg/errs"
	"flash-sale-api/internal/pkg/sign"
	"flash-sale-api/internal/usecase"
	"flash-sale-api/internal/usecase/readmodel"
	"flash-sale-api/tests/common/builder"
	sharedmock "flash-sale-api/tests/mock/shared"
	usecasemock "flash-sale-api/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ================================================================================
// Step ordering and outcome classification (mock-based)
// ================================================================================

type ExecuteTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	saleRepo *usecasemock.MockSaleRepository
	winRepo  *usecasemock.MockWinRecordRepository
	cache    *usecasemock.MockSaleCache
	uow      *sharedmock.MockUnitOfWork
	signer   *sign.Signer
	clock    *clock.MockClock
	uc       usecase.SaleUseCase
}

func (s *ExecuteTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.saleRepo = usecasemock.NewMockSaleRepository(s.mockCtrl)
	s.winRepo = usecasemock.NewMockWinRecordRepository(s.mockCtrl)
	s.cache = usecasemock.NewMockSaleCache(s.mockCtrl)
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.signer = sign.New("test-secret-salt")
	s.clock = clock.NewMockClock(builder.NewSaleBuilder().BaseTime())
	s.uc = usecase.NewSaleUseCase(s.saleRepo, s.winRepo, s.cache, s.uow, s.signer, s.clock)
}

func (s *ExecuteTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExecuteSuite(t *testing.T) {
	suite.Run(t, new(ExecuteTestSuite))
}

// passThroughTx makes the mocked unit of work run its body with a nil tx so
// the repository mocks observe the calls made inside the transaction.
func (s *ExecuteTestSuite) passThroughTx() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		})
}

func (s *ExecuteTestSuite) TestExecute_InvalidToken() {
	// No expectations on uow or repos: a bad token must not reach the store.
	win, err := s.uc.Execute(context.Background(), 1000, 555, "forged")
	s.ErrorIs(err, usecase.ErrInvalidToken)
	s.Nil(win)
}

func (s *ExecuteTestSuite) TestExecute_EmptyToken() {
	win, err := s.uc.Execute(context.Background(), 1000, 555, "")
	s.ErrorIs(err, usecase.ErrInvalidToken)
	s.Nil(win)
}

func (s *ExecuteTestSuite) TestExecute_TokenForAnotherSale() {
	win, err := s.uc.Execute(context.Background(), 1000, 555, s.signer.Sign(1001))
	s.ErrorIs(err, usecase.ErrInvalidToken)
	s.Nil(win)
}

func (s *ExecuteTestSuite) TestExecute_Success() {
	ctx := context.Background()
	winRM := builder.NewWinRecordBuilder().WithSaleID(1000).WithRequesterID(555).BuildRM()

	s.passThroughTx()
	gomock.InOrder(
		s.winRepo.EXPECT().TryInsert(gomock.Any(), gomock.Any(), int64(1000), int64(555)).Return(int64(1), nil),
		s.saleRepo.EXPECT().ReduceStock(gomock.Any(), gomock.Any(), int64(1000), s.clock.Now()).Return(int64(1), nil),
		s.winRepo.EXPECT().FindBySaleAndRequester(gomock.Any(), gomock.Any(), int64(1000), int64(555)).Return(winRM, nil),
	)

	win, err := s.uc.Execute(ctx, 1000, 555, s.signer.Sign(1000))
	s.NoError(err)
	s.Equal(winRM, win)
}

func (s *ExecuteTestSuite) TestExecute_AlreadyWonSkipsDecrement() {
	s.passThroughTx()
	s.winRepo.EXPECT().TryInsert(gomock.Any(), gomock.Any(), int64(1000), int64(555)).Return(int64(0), nil)
	// ReduceStock must never run after a duplicate registration.
	s.saleRepo.EXPECT().ReduceStock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	win, err := s.uc.Execute(context.Background(), 1000, 555, s.signer.Sign(1000))
	s.ErrorIs(err, usecase.ErrAlreadyWon)
	s.Nil(win)
}

func (s *ExecuteTestSuite) TestExecute_ExhaustedStockIsSaleClosed() {
	s.passThroughTx()
	s.winRepo.EXPECT().TryInsert(gomock.Any(), gomock.Any(), int64(1000), int64(555)).Return(int64(1), nil)
	s.saleRepo.EXPECT().ReduceStock(gomock.Any(), gomock.Any(), int64(1000), gomock.Any()).Return(int64(0), nil)
	s.winRepo.EXPECT().FindBySaleAndRequester(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	win, err := s.uc.Execute(context.Background(), 1000, 555, s.signer.Sign(1000))
	s.ErrorIs(err, usecase.ErrSaleClosed)
	s.NotErrorIs(err, usecase.ErrDatabaseOperationFailed)
	s.Nil(win)
}

func (s *ExecuteTestSuite) TestExecute_StoreFailuresBecomeInternal() {
	token := s.signer.Sign(1000)

	s.Run("insert failure", func() {
		s.passThroughTx()
		s.winRepo.EXPECT().TryInsert(gomock.Any(), gomock.Any(), int64(1000), int64(555)).
			Return(int64(0), errs.New("connection refused"))

		win, err := s.uc.Execute(context.Background(), 1000, 555, token)
		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
		s.NotErrorIs(err, usecase.ErrAlreadyWon)
		s.Nil(win)
	})

	s.Run("decrement failure", func() {
		s.passThroughTx()
		s.winRepo.EXPECT().TryInsert(gomock.Any(), gomock.Any(), int64(1000), int64(555)).Return(int64(1), nil)
		s.saleRepo.EXPECT().ReduceStock(gomock.Any(), gomock.Any(), int64(1000), gomock.Any()).
			Return(int64(0), errs.New("connection refused"))

		win, err := s.uc.Execute(context.Background(), 1000, 555, token)
		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
		s.NotErrorIs(err, usecase.ErrSaleClosed)
		s.Nil(win)
	})

	s.Run("commit failure", func() {
		s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(errs.New("failed to commit transaction"))

		win, err := s.uc.Execute(context.Background(), 1000, 555, token)
		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
		s.Nil(win)
	})
}

// ================================================================================
// Safety and idempotency properties (stateful fake ledger)
// ================================================================================

// fakeLedger emulates the store primitives with the same atomicity the real
// statements have. fakeUoW serializes transactions and restores the snapshot
// on error, matching a rollback.
type fakeLedger struct {
	remaining int32
	startAt   time.Time
	endAt     time.Time
	wins      map[int64]uuid.UUID // requesterID -> win id
}

func newFakeLedger(remaining int32, startAt, endAt time.Time) *fakeLedger {
	return &fakeLedger{
		remaining: remaining,
		startAt:   startAt,
		endAt:     endAt,
		wins:      make(map[int64]uuid.UUID),
	}
}

func (l *fakeLedger) snapshot() fakeLedger {
	wins := make(map[int64]uuid.UUID, len(l.wins))
	for k, v := range l.wins {
		wins[k] = v
	}
	return fakeLedger{remaining: l.remaining, startAt: l.startAt, endAt: l.endAt, wins: wins}
}

func (l *fakeLedger) FindByID(ctx context.Context, id int64) (*readmodel.SaleRM, error) {
	panic("not used by execute")
}

func (l *fakeLedger) List(ctx context.Context, offset, limit int32) ([]*readmodel.SaleRM, error) {
	panic("not used by execute")
}

func (l *fakeLedger) ReduceStock(ctx context.Context, tx db.DBTX, id int64, now time.Time) (int64, error) {
	if l.remaining <= 0 || now.Before(l.startAt) || now.After(l.endAt) {
		return 0, nil
	}
	l.remaining--
	return 1, nil
}

func (l *fakeLedger) TryInsert(ctx context.Context, tx db.DBTX, saleID, requesterID int64) (int64, error) {
	if _, ok := l.wins[requesterID]; ok {
		return 0, nil
	}
	l.wins[requesterID] = uuid.New()
	return 1, nil
}

func (l *fakeLedger) FindBySaleAndRequester(ctx context.Context, tx db.DBTX, saleID, requesterID int64) (*readmodel.WinRecordRM, error) {
	id, ok := l.wins[requesterID]
	if !ok {
		return nil, errs.New("win record not found")
	}
	return &readmodel.WinRecordRM{ID: id, SaleID: saleID, RequesterID: requesterID}, nil
}

type fakeUoW struct {
	mu     sync.Mutex
	ledger *fakeLedger
}

func (u *fakeUoW) Within(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	saved := u.ledger.snapshot()
	if err := fn(ctx, nil); err != nil {
		*u.ledger = saved
		return err
	}
	return nil
}

func newFakeEngine(t *testing.T, remaining int32) (usecase.SaleUseCase, *fakeLedger, *sign.Signer) {
	t.Helper()

	b := builder.NewSaleBuilder()
	ledger := newFakeLedger(remaining, b.BaseTime().Add(-time.Hour), b.BaseTime().Add(time.Hour))
	uow := &fakeUoW{ledger: ledger}
	signer := sign.New("test-secret-salt")
	clk := clock.NewMockClock(b.BaseTime())

	uc := usecase.NewSaleUseCase(ledger, ledger, unusedCache{}, uow, signer, clk)
	return uc, ledger, signer
}

type unusedCache struct{}

func (unusedCache) Get(ctx context.Context, id int64) (*readmodel.SaleRM, error) { return nil, nil }
func (unusedCache) Put(ctx context.Context, sale *readmodel.SaleRM) error        { return nil }

func TestExecute_SuccessesNeverExceedStock(t *testing.T) {
	const stock = 3
	const requesters = 20

	uc, ledger, signer := newFakeEngine(t, stock)
	token := signer.Sign(1000)

	var wg sync.WaitGroup
	results := make([]error, requesters)
	for i := range requesters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = uc.Execute(context.Background(), 1000, int64(100+i), token)
		}()
	}
	wg.Wait()

	var successes, closed int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		default:
			require.ErrorIs(t, err, usecase.ErrSaleClosed)
			closed++
		}
	}

	assert.Equal(t, stock, successes)
	assert.Equal(t, requesters-stock, closed)
	assert.Equal(t, int32(0), ledger.remaining)
	// No phantom wins: each remaining win record maps to a real decrement.
	assert.Len(t, ledger.wins, stock)
}

func TestExecute_TwoRequestersRaceForLastItem(t *testing.T) {
	uc, _, signer := newFakeEngine(t, 1)
	token := signer.Sign(1000)

	var wg sync.WaitGroup
	outcomes := make([]error, 2)
	ids := []int64{555, 777}
	for i, requester := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, outcomes[i] = uc.Execute(context.Background(), 1000, requester, token)
		}()
	}
	wg.Wait()

	winner := -1
	for i, err := range outcomes {
		if err == nil {
			require.Equal(t, -1, winner, "only one requester may win")
			winner = i
		} else {
			require.ErrorIs(t, err, usecase.ErrSaleClosed)
		}
	}
	require.NotEqual(t, -1, winner, "exactly one requester must win")

	// Retry by the winner is AlreadyWon; by the loser, still SaleClosed.
	_, err := uc.Execute(context.Background(), 1000, ids[winner], token)
	assert.ErrorIs(t, err, usecase.ErrAlreadyWon)

	_, err = uc.Execute(context.Background(), 1000, ids[1-winner], token)
	assert.ErrorIs(t, err, usecase.ErrSaleClosed)
}

func TestExecute_RetriesAreIdempotent(t *testing.T) {
	uc, ledger, signer := newFakeEngine(t, 5)
	token := signer.Sign(1000)

	win, err := uc.Execute(context.Background(), 1000, 555, token)
	require.NoError(t, err)
	require.NotNil(t, win)

	for range 3 {
		_, err := uc.Execute(context.Background(), 1000, 555, token)
		assert.ErrorIs(t, err, usecase.ErrAlreadyWon)
	}

	// Only the first attempt decremented.
	assert.Equal(t, int32(4), ledger.remaining)
}

func TestExecute_ConcurrentRetriesBySameRequester(t *testing.T) {
	const attempts = 10

	uc, ledger, signer := newFakeEngine(t, 5)
	token := signer.Sign(1000)

	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = uc.Execute(context.Background(), 1000, 555, token)
		}()
	}
	wg.Wait()

	var successes int
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, usecase.ErrAlreadyWon)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, int32(4), ledger.remaining)
}

func TestExecute_ClosedWindowRollsBackRegistration(t *testing.T) {
	b := builder.NewSaleBuilder()
	ledger := newFakeLedger(10, b.BaseTime().Add(-2*time.Hour), b.BaseTime().Add(-time.Hour))
	uow := &fakeUoW{ledger: ledger}
	signer := sign.New("test-secret-salt")
	clk := clock.NewMockClock(b.BaseTime()) // past endAt

	uc := usecase.NewSaleUseCase(ledger, ledger, unusedCache{}, uow, signer, clk)

	_, err := uc.Execute(context.Background(), 1000, 555, signer.Sign(1000))
	require.ErrorIs(t, err, usecase.ErrSaleClosed)

	// The rolled-back transaction leaves no orphaned win record.
	assert.Empty(t, ledger.wins)
	assert.Equal(t, int32(10), ledger.remaining)
}
