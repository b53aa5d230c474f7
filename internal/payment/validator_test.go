package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MikeMC777/caja-pos/internal/money"
)

func TestValidate_AcceptsIffPaidCoversTotal(t *testing.T) {
	totals := []money.Money{1, 500, 10000, 15000}
	for _, m := range []Method{MethodCash, MethodTransfer, Method("cheque")} {
		for _, total := range totals {
			for _, paid := range []money.Money{0, total - 1, total, total + 1, total * 3} {
				r := Validate(m, total, paid)
				if paid >= total {
					assert.True(t, r.Accepted, "method=%s total=%d paid=%d", m, total, paid)
					assert.Equal(t, paid-total, r.Change)
				} else {
					assert.False(t, r.Accepted, "method=%s total=%d paid=%d", m, total, paid)
					assert.Equal(t, money.Money(0), r.Change)
				}
			}
		}
	}
}

func TestValidate_ZeroTotalNeverAccepted(t *testing.T) {
	for _, paid := range []money.Money{0, 1, 10000} {
		r := Validate(MethodCash, 0, paid)
		assert.False(t, r.Accepted)
		assert.Equal(t, money.Money(0), r.Change)
	}
}

func TestParseMethod(t *testing.T) {
	assert.Equal(t, MethodCash, ParseMethod("cash"))
	assert.Equal(t, MethodCash, ParseMethod("Efectivo"))
	assert.Equal(t, MethodTransfer, ParseMethod(" TRANSFER "))
	assert.Equal(t, MethodTransfer, ParseMethod("transferencia"))
	assert.Equal(t, MethodCash, ParseMethod(""))
}
