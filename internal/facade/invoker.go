package facade

import (
	"context"

	"github.com/bytedance/sonic"

	"github.com/studiodesk-io/studiodesk/internal/dispatch"
)

// Invoker carries one named operation across the transport. The façade does
// not know whether the data layer lives in-process or behind the bridge.
type Invoker interface {
	Invoke(ctx context.Context, op string, payload interface{}, out interface{}) error
}

// LocalInvoker dispatches in-process. Payload and result still round-trip
// through JSON so that both invokers observe the same wire shapes.
type LocalInvoker struct {
	d *dispatch.Dispatcher
}

func NewLocalInvoker(d *dispatch.Dispatcher) *LocalInvoker {
	return &LocalInvoker{d: d}
}

func (l *LocalInvoker) Invoke(ctx context.Context, op string, payload interface{}, out interface{}) error {
	var raw []byte
	if payload != nil {
		b, err := sonic.Marshal(payload)
		if err != nil {
			return err
		}
		raw = b
	}

	res, err := l.d.Dispatch(ctx, op, raw)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	b, err := sonic.Marshal(res)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(b, out)
}
