package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/caja-pos/internal/apperr"
)

var allStatuses = []Status{StatusPendingPrep, StatusReady, StatusDelivered, StatusClosed, StatusCancelled}

func TestTransition_Table(t *testing.T) {
	allowed := map[[2]Status]bool{
		{StatusPendingPrep, StatusReady}:     true,
		{StatusPendingPrep, StatusCancelled}: true,
		{StatusReady, StatusDelivered}:       true,
		{StatusReady, StatusPendingPrep}:     true,
		{StatusReady, StatusCancelled}:       true,
	}
	at := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			o := &Order{NumberInRegister: 1, Status: from}
			changed, err := o.Transition(to, "", at)

			switch {
			case from == to:
				require.NoError(t, err, "%s -> %s", from, to)
				assert.False(t, changed)
			case allowed[[2]Status{from, to}]:
				require.NoError(t, err, "%s -> %s", from, to)
				assert.True(t, changed)
				assert.Equal(t, to, o.Status)
				assert.Equal(t, at, o.UpdatedAt)
			case from.Terminal():
				require.Error(t, err, "%s -> %s", from, to)
				assert.Equal(t, from, o.Status)
				if to == StatusCancelled && from.Completed() {
					assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
				} else {
					assert.ErrorIs(t, err, apperr.ErrOrderAlreadyTerminal)
				}
			default:
				assert.ErrorIs(t, err, apperr.ErrInvalidTransition, "%s -> %s", from, to)
				assert.Equal(t, from, o.Status)
			}
		}
	}
}

func TestTransition_CancelStoresReason(t *testing.T) {
	o := &Order{Status: StatusReady}
	changed, err := o.Transition(StatusCancelled, "  cliente se retiró ", time.Now())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "cliente se retiró", o.CancelReason)
}

func TestTransition_DoesNotTouchItemsOrPayment(t *testing.T) {
	o := &Order{
		Status:  StatusPendingPrep,
		Items:   []Item{{ProductID: 1, ProductName: "Churro", UnitPrice: 5000, Quantity: 2}},
		Total:   10000,
		Payment: Payment{Method: "cash", AmountPaid: 10000},
	}
	_, err := o.Transition(StatusReady, "ignored", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 10000, int(o.Total))
	assert.Len(t, o.Items, 1)
	assert.Empty(t, o.CancelReason)
}

func TestTransition_UnknownStatus(t *testing.T) {
	o := &Order{Status: StatusPendingPrep}
	_, err := o.Transition(Status("eaten"), "", time.Now())
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus("PENDING_PREP")
	assert.True(t, ok)
	assert.Equal(t, StatusPendingPrep, s)

	s, ok = ParseStatus("prep")
	assert.True(t, ok)
	assert.Equal(t, StatusPendingPrep, s)

	_, ok = ParseStatus("wtf")
	assert.False(t, ok)
}
