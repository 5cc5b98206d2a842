package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchRoutesToHandler(t *testing.T) {
	d := New()
	d.Register("echo", func(ctx context.Context, payload []byte) (interface{}, error) {
		return string(payload), nil
	})

	out, err := d.Dispatch(context.Background(), "echo", []byte(`{"hi":1}`))
	require.NoError(t, err)
	assert.Equal(t, `{"hi":1}`, out)
}

func TestDispatchUnknownOperation(t *testing.T) {
	d := New()

	_, err := d.Dispatch(context.Background(), "no-such-op", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Contains(t, err.Error(), "no-such-op")
}

func TestDispatchPropagatesHandlerFailure(t *testing.T) {
	d := New()
	boom := errors.New("constraint failed")
	d.Register("fail", func(ctx context.Context, payload []byte) (interface{}, error) {
		return nil, boom
	})

	_, err := d.Dispatch(context.Background(), "fail", nil)
	assert.ErrorIs(t, err, boom)
}

func TestRegisterTwicePanics(t *testing.T) {
	d := New()
	h := func(ctx context.Context, payload []byte) (interface{}, error) { return nil, nil }
	d.Register("op", h)
	assert.Panics(t, func() { d.Register("op", h) })
}

func TestBind(t *testing.T) {
	type req struct {
		ID uint `json:"id"`
	}

	var r req
	require.NoError(t, Bind([]byte(`{"id":7}`), &r))
	assert.Equal(t, uint(7), r.ID)

	// empty payload binds the zero request
	var empty req
	require.NoError(t, Bind(nil, &empty))
	assert.Zero(t, empty.ID)

	assert.Error(t, Bind([]byte(`{"id":`), &r))
}
