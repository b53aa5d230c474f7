package register

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/caja-pos/internal/apperr"
)

// OpenRegisterRequest opening payload. Counts map a denomination to the
// number of bills or coins of it.
// swagger:model OpenRegisterRequest
type OpenRegisterRequest struct {
	OpeningAmount decimal.Decimal `json:"opening_amount" swaggertype:"number" example:"10000"`
	Notes         string          `json:"notes"          example:"turno mañana"`
	OpeningCounts Counts          `json:"opening_counts"`
}

// CloseRegisterRequest closing payload.
// swagger:model CloseRegisterRequest
type CloseRegisterRequest struct {
	ClosingAmount decimal.Decimal `json:"closing_amount" swaggertype:"number" example:"20000"`
	Notes         string          `json:"notes"          example:""`
	ClosingCounts Counts          `json:"closing_counts"`
}

var maxUnits = decimal.NewFromInt(math.MaxInt64)

// Units rounds an external amount to whole units. A negative input stays
// negative so validation rejects it; one beyond int64 is rejected here.
func Units(d decimal.Decimal, field string) (int64, error) {
	r := d.Round(0)
	if r.Abs().GreaterThan(maxUnits) {
		return 0, apperr.ErrInvalidAmount.With("%s: amount %s out of range", field, d.String())
	}
	return r.IntPart(), nil
}
