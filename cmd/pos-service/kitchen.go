package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MikeMC777/caja-pos/internal/apperr"
	"github.com/MikeMC777/caja-pos/internal/httpx"
	"github.com/MikeMC777/caja-pos/internal/order"
	"github.com/MikeMC777/caja-pos/internal/registry"
)

// Kitchen display labels. Legacy "closed" orders show as delivered.
var kitchenLabels = map[order.Status]string{
	order.StatusPendingPrep: "EN_PREPARACION",
	order.StatusReady:       "LISTO",
	order.StatusDelivered:   "ENTREGADO",
	order.StatusClosed:      "ENTREGADO",
	order.StatusCancelled:   "ANULADO",
}

var kitchenInputs = map[string]order.Status{
	"EN_PREPARACION": order.StatusPendingPrep,
	"LISTO":          order.StatusReady,
	"ENTREGADO":      order.StatusDelivered,
	"ANULADO":        order.StatusCancelled,
}

func kitchenLabel(s order.Status) string {
	if l, ok := kitchenLabels[s]; ok {
		return l
	}
	return strings.ToUpper(string(s))
}

type kitchenItem struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

type kitchenOrder struct {
	ID               string        `json:"id"`
	NumberInRegister int           `json:"number_in_register"`
	ReferenceName    string        `json:"reference_name"`
	Status           string        `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	Items            []kitchenItem `json:"items"`
}

// KitchenStatusRequest takes a kitchen label; "estado" is accepted for
// older displays.
// swagger:model KitchenStatusRequest
type KitchenStatusRequest struct {
	Status string `json:"status" example:"LISTO"`
	Estado string `json:"estado,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// kitchenOrdersHandler godoc
// @Summary  Orders the kitchen is working on, oldest first
// @Tags     kitchen
// @Security BasicAuth
// @Produce  json
// @Success  200 {object} object{items=[]kitchenOrder}
// @Router   /kitchen/orders [get]
func kitchenOrdersHandler(svc *registry.Service, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		active, err := svc.ActiveOrders(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		out := make([]kitchenOrder, 0, len(active))
		for _, o := range active {
			ko := kitchenOrder{
				ID:               o.ID,
				NumberInRegister: o.NumberInRegister,
				ReferenceName:    o.ReferenceName,
				Status:           kitchenLabel(o.Status),
				CreatedAt:        o.CreatedAt,
			}
			for _, it := range o.Items {
				ko.Items = append(ko.Items, kitchenItem{ProductName: it.ProductName, Quantity: it.Quantity})
			}
			out = append(out, ko)
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

// productionSummaryHandler godoc
// @Summary  Units to prepare per product
// @Tags     kitchen
// @Security BasicAuth
// @Produce  json
// @Success  200 {object} registry.ProductionSummary
// @Router   /kitchen/summary [get]
func productionSummaryHandler(svc *registry.Service, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sum, err := svc.ProductionSummary(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, sum)
	}
}

// kitchenStatusHandler godoc
// @Summary  Change an order's status using kitchen labels
// @Tags     kitchen
// @Security BasicAuth
// @Accept   json
// @Produce  json
// @Param    id   path string               true "order id"
// @Param    body body KitchenStatusRequest true "status"
// @Success  200 {object} kitchenOrder
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /kitchen/orders/{id}/status [post]
func kitchenStatusHandler(svc *registry.Service, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in KitchenStatusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		label := in.Status
		if label == "" {
			label = in.Estado
		}
		to, ok := kitchenInputs[strings.ToUpper(strings.TrimSpace(label))]
		if !ok {
			httpx.WriteError(c, log, apperr.ErrInvalidTransition.With("unknown kitchen status %q", label))
			return
		}

		var (
			o   *order.Order
			err error
		)
		if to == order.StatusCancelled {
			o, err = svc.CancelOrder(c.Request.Context(), c.Param("id"), in.Reason)
		} else {
			o, err = svc.SetOrderStatus(c.Request.Context(), c.Param("id"), to)
		}
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": o.ID, "number_in_register": o.NumberInRegister, "status": kitchenLabel(o.Status)})
	}
}
