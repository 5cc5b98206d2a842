// Package dispatch routes named operations to their handling logic. The
// registry is populated once during startup wiring and read-only afterwards;
// every dispatch is independent of any other.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

// ErrUnknownOperation is returned when no handler is registered for a name.
var ErrUnknownOperation = errors.New("unknown operation")

// Handler consumes the raw JSON payload of one request and returns its result.
// Failures propagate to the caller unchanged.
type Handler func(ctx context.Context, payload []byte) (interface{}, error)

type Dispatcher struct {
	handlers map[string]Handler
}

func New() *Dispatcher {
	return &Dispatcher{handlers: map[string]Handler{}}
}

// Register binds a handler to an operation name. Registering the same name
// twice is a wiring bug, so it panics rather than silently shadowing.
func (d *Dispatcher) Register(name string, h Handler) {
	if _, dup := d.handlers[name]; dup {
		panic(fmt.Sprintf("dispatch: operation %q registered twice", name))
	}
	d.handlers[name] = h
}

// Operations returns the registered operation names.
func (d *Dispatcher) Operations() []string {
	ops := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		ops = append(ops, name)
	}
	return ops
}

// Dispatch locates the handler for name and invokes it with payload. An
// unregistered name fails that single request with ErrUnknownOperation.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, payload []byte) (interface{}, error) {
	h, ok := d.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	return h(ctx, payload)
}

// Bind decodes payload into a typed request. Empty payloads decode to the
// zero request so that no-payload operations can share the signature.
func Bind(payload []byte, dst interface{}) error {
	if len(payload) == 0 {
		return nil
	}
	return sonic.Unmarshal(payload, dst)
}
