package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/MikeMC777/caja-pos/internal/apperr"
	"github.com/MikeMC777/caja-pos/internal/httpx"
	"github.com/MikeMC777/caja-pos/internal/money"
	"github.com/MikeMC777/caja-pos/internal/order"
	"github.com/MikeMC777/caja-pos/internal/payment"
	"github.com/MikeMC777/caja-pos/internal/product"
	"github.com/MikeMC777/caja-pos/internal/register"
	"github.com/MikeMC777/caja-pos/internal/registry"
)

// Register view labels.
var registerLabels = map[order.Status]string{
	order.StatusPendingPrep: "En preparación",
	order.StatusReady:       "Listo",
	order.StatusDelivered:   "Entregado",
	order.StatusClosed:      "Cerrado",
	order.StatusCancelled:   "Anulado",
}

func registerLabel(s order.Status) string {
	if l, ok := registerLabels[s]; ok {
		return l
	}
	return string(s)
}

type itemView struct {
	order.Item
	Subtotal money.Money `json:"subtotal"`
}

// orderView is an order as the register shows it, receipt lines included.
type orderView struct {
	*order.Order
	Items       []itemView `json:"items"`
	StatusLabel string     `json:"status_label"`
}

type summaryView struct {
	order.Summary
	StatusLabel string `json:"status_label"`
}

func viewOrder(o *order.Order) orderView {
	v := orderView{Order: o, Items: make([]itemView, 0, len(o.Items)), StatusLabel: registerLabel(o.Status)}
	for _, it := range o.Items {
		v.Items = append(v.Items, itemView{Item: it, Subtotal: it.Subtotal()})
	}
	return v
}

// ---- cash register

// cashStatusHandler godoc
// @Summary  Current cash register state
// @Tags     cash
// @Security BasicAuth
// @Produce  json
// @Success  200 {object} registry.Status
// @Router   /pos/cash/status [get]
func cashStatusHandler(svc *registry.Service, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := svc.CurrentStatus(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

// openRegisterHandler godoc
// @Summary  Open the cash register
// @Tags     cash
// @Security BasicAuth
// @Accept   json
// @Produce  json
// @Param    body body register.OpenRegisterRequest true "opening"
// @Success  201 {object} register.Session
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /pos/cash/open [post]
func openRegisterHandler(svc *registry.Service, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in register.OpenRegisterRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		opening, err := register.Units(in.OpeningAmount, "opening_amount")
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		sess, err := svc.OpenRegister(c.Request.Context(), register.OpenRequest{
			OpeningAmount: opening,
			Notes:         in.Notes,
			OpeningCounts: in.OpeningCounts,
			OpenedBy:      httpx.UserID(c),
		})
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, sess)
	}
}

// closeRegisterHandler godoc
// @Summary  Close the cash register and reconcile
// @Tags     cash
// @Security BasicAuth
// @Accept   json
// @Produce  json
// @Param    body body register.CloseRegisterRequest true "closing"
// @Success  200 {object} registry.CloseResult
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /pos/cash/close [post]
func closeRegisterHandler(svc *registry.Service, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in register.CloseRegisterRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		closing, err := register.Units(in.ClosingAmount, "closing_amount")
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		res, err := svc.CloseRegister(c.Request.Context(), register.CloseRequest{
			ClosingAmount: closing,
			Notes:         in.Notes,
			ClosingCounts: in.ClosingCounts,
			ClosedBy:      httpx.UserID(c),
		})
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// ---- catalog

// listProductsHandler godoc
// @Summary  Products for sale
// @Tags     products
// @Security BasicAuth
// @Produce  json
// @Success  200 {object} object{items=[]product.Product}
// @Router   /pos/products [get]
func listProductsHandler(repo product.Repository, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.ListActive(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// ---- orders

func amount(d decimal.Decimal, field string) (money.Money, error) {
	m, err := money.FromDecimal(d)
	if err != nil {
		return 0, apperr.ErrInvalidAmount.With("%s: %v", field, err)
	}
	return m, nil
}

func toNewOrder(in order.CreateOrderRequest) (registry.NewOrder, error) {
	paid, err := amount(in.Payment.AmountPaid, "amount_paid")
	if err != nil {
		return registry.NewOrder{}, err
	}
	items := make([]order.Item, 0, len(in.Items))
	for i, it := range in.Items {
		var price money.Money
		if it.UnitPrice != nil {
			if price, err = money.FromDecimal(*it.UnitPrice); err != nil {
				return registry.NewOrder{}, apperr.ErrInvalidOrder.With("item %d: unit price: %v", i+1, err)
			}
		}
		items = append(items, order.Item{
			ProductID:   it.ProductID,
			ProductName: strings.TrimSpace(it.ProductName),
			UnitPrice:   price,
			Quantity:    it.Quantity,
		})
	}
	return registry.NewOrder{
		ReferenceName: in.ReferenceName,
		Items:         items,
		Method:        payment.ParseMethod(in.Payment.Method),
		AmountPaid:    paid,
	}, nil
}

// createOrderHandler godoc
// @Summary  Ring up an order
// @Tags     orders
// @Security BasicAuth
// @Accept   json
// @Produce  json
// @Param    body body order.CreateOrderRequest true "order"
// @Success  201 {object} order.Order
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /pos/orders [post]
func createOrderHandler(svc *registry.Service, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CreateOrderRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		no, err := toNewOrder(in)
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		no.CreatedBy = httpx.UserID(c)

		o, err := svc.CreateOrder(c.Request.Context(), no)
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, viewOrder(o))
	}
}

// getOrderHandler godoc
// @Summary  Order detail
// @Tags     orders
// @Security BasicAuth
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} order.Order
// @Failure  404 {object} httpx.HTTPError
// @Router   /pos/orders/{id} [get]
func getOrderHandler(svc *registry.Service, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, viewOrder(o))
	}
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New(key + " must be a non-negative integer")
	}
	return n, nil
}

// orderHistoryHandler godoc
// @Summary  Order history, most recent first
// @Tags     orders
// @Security BasicAuth
// @Produce  json
// @Param    session_id query string false "register session"
// @Param    limit      query int    false "max 200"
// @Param    offset     query int    false "offset"
// @Success  200 {object} object{items=[]order.Summary,limit=int,offset=int}
// @Router   /pos/orders/history [get]
func orderHistoryHandler(svc *registry.Service, log *zap.Logger, defaultLimit int) gin.HandlerFunc {
	if defaultLimit <= 0 || defaultLimit > order.MaxHistoryLimit {
		defaultLimit = order.DefaultHistoryLimit
	}
	return func(c *gin.Context) {
		limit, err := queryInt(c, "limit", defaultLimit)
		if err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}
		offset, err := queryInt(c, "offset", 0)
		if err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}
		if limit == 0 {
			limit = defaultLimit
		}
		if limit > order.MaxHistoryLimit {
			limit = order.MaxHistoryLimit
		}

		rows, err := svc.ListHistory(c.Request.Context(), order.Query{
			SessionID: strings.TrimSpace(c.Query("session_id")),
			Limit:     limit,
			Offset:    offset,
		})
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		out := make([]summaryView, 0, len(rows))
		for _, r := range rows {
			out = append(out, summaryView{Summary: r, StatusLabel: registerLabel(r.Status)})
		}
		c.JSON(http.StatusOK, gin.H{"items": out, "limit": limit, "offset": offset})
	}
}

// updateOrderStatusHandler godoc
// @Summary  Change an order's status
// @Tags     orders
// @Security BasicAuth
// @Accept   json
// @Produce  json
// @Param    id   path string                    true "order id"
// @Param    body body order.UpdateStatusRequest true "status"
// @Success  200 {object} order.Order
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /pos/orders/{id}/status [put]
func updateOrderStatusHandler(svc *registry.Service, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		to, ok := order.ParseStatus(in.Status)
		if !ok {
			httpx.WriteError(c, log, apperr.ErrInvalidTransition.With("unknown status %q", in.Status))
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
		c.JSON(http.StatusOK, viewOrder(o))
	}
}

// cancelOrderHandler godoc
// @Summary  Cancel an order
// @Tags     orders
// @Security BasicAuth
// @Accept   json
// @Produce  json
// @Param    id   path string              true  "order id"
// @Param    body body order.CancelRequest false "reason"
// @Success  200 {object} order.Order
// @Failure  404 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /pos/orders/{id}/cancel [post]
func cancelOrderHandler(svc *registry.Service, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CancelRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&in); err != nil {
				httpx.BadRequest(c, "invalid json")
				return
			}
		}
		o, err := svc.CancelOrder(c.Request.Context(), c.Param("id"), in.Reason)
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, viewOrder(o))
	}
}

// ValidatePaymentRequest submit gate payload.
// swagger:model ValidatePaymentRequest
type ValidatePaymentRequest struct {
	Method     string          `json:"method"      example:"cash"`
	Total      decimal.Decimal `json:"total"       swaggertype:"number" example:"10000"`
	AmountPaid decimal.Decimal `json:"amount_paid" swaggertype:"number" example:"12000"`
}

// validatePaymentHandler godoc
// @Summary  Check whether a payment covers a total
// @Tags     orders
// @Security BasicAuth
// @Accept   json
// @Produce  json
// @Param    body body ValidatePaymentRequest true "payment"
// @Success  200 {object} payment.Result
// @Failure  400 {object} httpx.HTTPError
// @Router   /pos/payment/validate [post]
func validatePaymentHandler(svc *registry.Service, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ValidatePaymentRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		total, err := amount(in.Total, "total")
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		paid, err := amount(in.AmountPaid, "amount_paid")
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, svc.ValidatePayment(payment.ParseMethod(in.Method), total, paid))
	}
}
