package product

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/caja-pos/internal/money"
)

type Product struct {
	ID        int64       `json:"id"`
	SKU       string      `json:"sku,omitempty"`
	Name      string      `json:"name"`
	Category  string      `json:"category,omitempty"`
	Price     money.Money `json:"price"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	SKU      string          `json:"sku"      example:"CH-01"`
	Name     string          `json:"name"     example:"Churro relleno"`
	Category string          `json:"category" example:"churros"`
	Price    decimal.Decimal `json:"price"    swaggertype:"number" example:"1500"`
}
