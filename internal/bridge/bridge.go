// Package bridge is the transport between the UI process and the data layer:
// a loopback-only HTTP server the embedded webview invokes. The dispatcher
// behind it neither knows nor cares that HTTP is involved.
package bridge

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/studiodesk-io/studiodesk/internal/dispatch"
	"github.com/studiodesk-io/studiodesk/internal/middleware"
	"github.com/studiodesk-io/studiodesk/internal/modules/serializer"
)

type Deps struct {
	Log        *zap.Logger
	Dispatcher *dispatch.Dispatcher
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	v1 := r.Group("/api/v1")
	{
		v1.POST("/invoke/:operation", Invoke(d.Dispatcher))
	}
	return r
}

// Invoke reads the raw request payload, dispatches it by operation name, and
// wraps the outcome in the response envelope. Handler failures pass through
// unchanged; the UI owns any user-facing messaging.
func Invoke(disp *dispatch.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		op := c.Param("operation")

		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
			return
		}

		out, err := disp.Dispatch(c.Request.Context(), op, payload)
		if errors.Is(err, dispatch.ErrUnknownOperation) {
			c.JSON(http.StatusNotFound, serializer.UnknownOpErr(op, err))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		c.JSON(http.StatusOK, serializer.Response{Data: out})
	}
}
