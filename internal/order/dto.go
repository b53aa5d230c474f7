package order

import "github.com/shopspring/decimal"

// CreateOrderItem line payload. Name and unit price are only needed for
// products the catalog does not know.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	ProductID   int64            `json:"product_id"   example:"1"`
	ProductName string           `json:"product_name" example:"Churro relleno"`
	UnitPrice   *decimal.Decimal `json:"unit_price"   swaggertype:"number" example:"5000"`
	Quantity    int              `json:"quantity"     example:"2"`
}

// CreatePaymentRequest payment payload.
// swagger:model CreatePaymentRequest
type CreatePaymentRequest struct {
	Method     string          `json:"method"      example:"cash"`
	AmountPaid decimal.Decimal `json:"amount_paid" swaggertype:"number" example:"10000"`
}

// CreateOrderRequest order creation payload.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	ReferenceName string               `json:"reference_name" example:"Mesa 3"`
	Items         []CreateOrderItem    `json:"items"`
	Payment       CreatePaymentRequest `json:"payment"`
}

// UpdateStatusRequest status change payload.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"ready"`
	Reason string `json:"reason" example:""`
}

// CancelRequest cancellation payload.
// swagger:model CancelRequest
type CancelRequest struct {
	Reason string `json:"reason" example:"cliente se retiró"`
}
