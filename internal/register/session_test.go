package register

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/caja-pos/internal/apperr"
	"github.com/MikeMC777/caja-pos/internal/money"
)

var t0 = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

func TestOpen(t *testing.T) {
	s, err := Open(OpenRequest{OpeningAmount: 10000, Notes: " turno mañana "}, t0)
	require.NoError(t, err)
	assert.True(t, s.IsOpen())
	assert.Equal(t, 1, s.NextOrderNumber)
	assert.Equal(t, money.Money(10000), s.OpeningAmount)
	assert.Equal(t, "turno mañana", s.Notes)
	assert.NotEmpty(t, s.ID)
}

func TestOpen_InvalidAmount(t *testing.T) {
	_, err := Open(OpenRequest{OpeningAmount: -1}, t0)
	assert.ErrorIs(t, err, apperr.ErrInvalidAmount)

	_, err = Open(OpenRequest{OpeningCounts: Counts{1000: -2}}, t0)
	assert.ErrorIs(t, err, apperr.ErrInvalidAmount)

	_, err = Open(OpenRequest{OpeningCounts: Counts{0: 2}}, t0)
	assert.ErrorIs(t, err, apperr.ErrInvalidAmount)
}

func TestNextNumber_Monotonic(t *testing.T) {
	s, err := Open(OpenRequest{}, t0)
	require.NoError(t, err)

	for want := 1; want <= 5; want++ {
		n, err := s.NextNumber()
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
}

func TestNextNumber_FrozenAfterClose(t *testing.T) {
	s, err := Open(OpenRequest{}, t0)
	require.NoError(t, err)
	require.NoError(t, s.Close(CloseRequest{}, nil, t0.Add(time.Hour)))

	_, err = s.NextNumber()
	assert.ErrorIs(t, err, apperr.ErrRegisterClosed)
	assert.Equal(t, 1, s.NextOrderNumber)
}

func TestClose_Reconciliation(t *testing.T) {
	s, err := Open(OpenRequest{OpeningAmount: 10000}, t0)
	require.NoError(t, err)

	sales := []Sale{
		{Cash: true, AmountPaid: 10000},
		{Cash: true, AmountPaid: 15000, Cancelled: true},
		{Cash: false, AmountPaid: 4000},
	}
	require.NoError(t, s.Close(CloseRequest{ClosingAmount: 20000, Notes: "ok"}, sales, t0.Add(8*time.Hour)))

	rec := s.Reconciliation
	require.NotNil(t, rec)
	assert.Equal(t, money.Money(20000), rec.ExpectedCash)
	assert.Equal(t, int64(0), rec.Variance)
	assert.Equal(t, money.Money(10000), rec.TotalCash)
	assert.Equal(t, money.Money(4000), rec.TotalTransfer)
	assert.Equal(t, money.Money(14000), rec.TotalSales)
	assert.Equal(t, 2, rec.TotalOrders)
	assert.Equal(t, 1, rec.TotalCancelled)
	assert.Nil(t, rec.CountedCash)
	assert.Equal(t, StatusClosed, s.Status)
	require.NotNil(t, s.ClosedAt)
}

func TestClose_NegativeVariance(t *testing.T) {
	s, err := Open(OpenRequest{OpeningAmount: 5000}, t0)
	require.NoError(t, err)
	require.NoError(t, s.Close(CloseRequest{
		ClosingAmount: 6000,
		ClosingCounts: Counts{1000: 5, 500: 2},
	}, []Sale{{Cash: true, AmountPaid: 2000}}, t0))

	assert.Equal(t, int64(-1000), s.Reconciliation.Variance)
	require.NotNil(t, s.Reconciliation.CountedCash)
	assert.Equal(t, money.Money(6000), *s.Reconciliation.CountedCash)
}

func TestClose_Errors(t *testing.T) {
	s, err := Open(OpenRequest{}, t0)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Close(CloseRequest{ClosingAmount: -5}, nil, t0), apperr.ErrInvalidAmount)
	assert.True(t, s.IsOpen())

	require.NoError(t, s.Close(CloseRequest{}, nil, t0))
	assert.ErrorIs(t, s.Close(CloseRequest{}, nil, t0), apperr.ErrRegisterNotOpen)
}

func TestClone_IsIndependent(t *testing.T) {
	s, err := Open(OpenRequest{OpeningCounts: Counts{1000: 1}}, t0)
	require.NoError(t, err)

	cp := s.Clone()
	_, _ = cp.NextNumber()
	cp.OpeningCounts[1000] = 9

	assert.Equal(t, 1, s.NextOrderNumber)
	assert.Equal(t, 1, s.OpeningCounts[1000])
}
