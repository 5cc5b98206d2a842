package bridge

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/studiodesk-io/studiodesk/internal/dispatch"
	"github.com/studiodesk-io/studiodesk/internal/modules/serializer"
)

func newTestRouter(t *testing.T, d *dispatch.Dispatcher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(Deps{Log: zap.NewNop(), Dispatcher: d})
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, dispatch.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInvokeHappyPath(t *testing.T) {
	d := dispatch.New()
	d.Register("ping", func(ctx context.Context, payload []byte) (interface{}, error) {
		return map[string]string{"pong": string(payload)}, nil
	})
	r := newTestRouter(t, d)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoke/ping", strings.NewReader(`"x"`))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	res := serializer.Response{}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &res))
	data, ok := res.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, `"x"`, data["pong"])
}

func TestInvokeUnknownOperation(t *testing.T) {
	r := newTestRouter(t, dispatch.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoke/no-such-op", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	res := serializer.Response{}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, res.Msg, "no-such-op")
}

func TestInvokeHandlerFailure(t *testing.T) {
	d := dispatch.New()
	d.Register("boom", func(ctx context.Context, payload []byte) (interface{}, error) {
		return nil, errors.New("CHECK constraint failed: status")
	})
	r := newTestRouter(t, d)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoke/boom", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
