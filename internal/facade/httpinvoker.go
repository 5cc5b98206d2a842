package facade

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// HTTPInvoker reaches the data layer through the loopback bridge.
type HTTPInvoker struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewHTTPInvoker(baseURL string) *HTTPInvoker {
	return &HTTPInvoker{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// envelope mirrors the bridge's serializer.Response.
type envelope struct {
	Code  int             `json:"code"`
	Data  json.RawMessage `json:"data"`
	Msg   string          `json:"msg"`
	Error string          `json:"error"`
}

func (c *HTTPInvoker) Invoke(ctx context.Context, op string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := sonic.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	url := fmt.Sprintf("%s/api/v1/invoke/%s", c.BaseURL, op)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	env := envelope{}
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s failed: %s (status %d)", op, env.Msg, resp.StatusCode)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return sonic.Unmarshal(env.Data, out)
}
