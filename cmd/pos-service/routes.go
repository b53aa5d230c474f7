package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/MikeMC777/caja-pos/internal/httpx"
	"github.com/MikeMC777/caja-pos/internal/metrics"
	"github.com/MikeMC777/caja-pos/internal/product"
	"github.com/MikeMC777/caja-pos/internal/registry"
	"github.com/MikeMC777/caja-pos/internal/user"
)

type deps struct {
	reg          *registry.Service
	products     product.Repository
	users        *user.Service
	metrics      *metrics.Metrics
	log          *zap.Logger
	authEnabled  bool
	historyLimit int
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(d.log))
	if d.metrics != nil {
		r.Use(httpx.Metrics(d.metrics))
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// allow returns the role gate, or nothing with authentication off.
	allow := func(roles ...user.Role) []gin.HandlerFunc {
		if !d.authEnabled {
			return nil
		}
		return []gin.HandlerFunc{httpx.BasicAuth(d.users), httpx.RequireRoles(roles...)}
	}
	staff := []user.Role{user.RoleAdmin, user.RoleCashier}
	kitchen := []user.Role{user.RoleAdmin, user.RoleCashier, user.RoleKitchen}

	pos := r.Group("/pos", allow(staff...)...)
	{
		pos.GET("/cash/status", cashStatusHandler(d.reg, d.log))
		pos.POST("/cash/open", openRegisterHandler(d.reg, d.log))
		pos.POST("/cash/close", closeRegisterHandler(d.reg, d.log))

		pos.GET("/products", listProductsHandler(d.products, d.log))

		pos.POST("/orders", createOrderHandler(d.reg, d.log))
		pos.GET("/orders/history", orderHistoryHandler(d.reg, d.log, d.historyLimit))
		pos.GET("/orders/:id", getOrderHandler(d.reg, d.log))
		pos.PUT("/orders/:id/status", updateOrderStatusHandler(d.reg, d.log))
		pos.POST("/orders/:id/cancel", cancelOrderHandler(d.reg, d.log))

		pos.POST("/payment/validate", validatePaymentHandler(d.reg, d.log))
	}

	kg := r.Group("/kitchen", allow(kitchen...)...)
	{
		kg.GET("/orders", kitchenOrdersHandler(d.reg, d.log))
		kg.GET("/summary", productionSummaryHandler(d.reg, d.log))
		kg.POST("/orders/:id/status", kitchenStatusHandler(d.reg, d.log))
	}

	admin := r.Group("/admin", allow(user.RoleAdmin)...)
	{
		admin.POST("/products", createProductHandler(d.products, d.log))
		admin.POST("/users", createUserHandler(d.users, d.log))
	}
	return r
}
