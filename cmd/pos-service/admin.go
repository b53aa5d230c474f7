package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MikeMC777/caja-pos/internal/httpx"
	"github.com/MikeMC777/caja-pos/internal/product"
	"github.com/MikeMC777/caja-pos/internal/user"
)

// createProductHandler godoc
// @Summary  Add a product to the catalog
// @Tags     admin
// @Security BasicAuth
// @Accept   json
// @Produce  json
// @Param    body body product.CreateProductRequest true "product"
// @Success  201 {object} product.Product
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /admin/products [post]
func createProductHandler(repo product.Repository, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in product.CreateProductRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		p, err := product.New(in)
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// createUserHandler godoc
// @Summary  Create a staff account
// @Tags     admin
// @Security BasicAuth
// @Accept   json
// @Produce  json
// @Param    body body user.CreateUserRequest true "user"
// @Success  201 {object} user.User
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /admin/users [post]
func createUserHandler(svc *user.Service, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.CreateUserRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		u, err := svc.CreateUser(c.Request.Context(), in)
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}
