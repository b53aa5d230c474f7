package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MikeMC777/caja-pos/internal/apperr"
)

// HTTPError is the error body of every endpoint.
// swagger:model HTTPError
type HTTPError struct {
	Error string `json:"error" example:"amount paid does not cover the total"`
	Code  string `json:"code,omitempty" example:"InsufficientPayment"`
}

func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindState:
		return http.StatusConflict
	case apperr.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// WriteError answers with the structured failure. Anything that is not an
// application error is logged and hidden behind a generic 500.
func WriteError(c *gin.Context, log *zap.Logger, err error) {
	if e, ok := apperr.As(err); ok {
		c.JSON(StatusOf(err), HTTPError{Error: e.Message, Code: e.Code})
		return
	}
	rid, _ := c.Get("rid")
	log.Error("request failed", zap.Any("rid", rid), zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, HTTPError{Error: "internal error"})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, HTTPError{Error: msg, Code: apperr.ErrInvalidInput.Code})
}
