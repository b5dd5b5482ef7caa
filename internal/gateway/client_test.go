package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"travelplan-frontend/internal/config"
	"travelplan-frontend/internal/notify"
)

type captureNotifier struct {
	mu      sync.Mutex
	notices []notify.Notice
}

func (c *captureNotifier) Notify(message string, kind notify.Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, notify.Notice{Message: message, Kind: kind})
}

func (c *captureNotifier) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.notices)
}

func (c *captureNotifier) last() notify.Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notices[len(c.notices)-1]
}

func newTestClient(baseURL string, n notify.Notifier) *Client {
	cfg := &config.Config{}
	cfg.API.BaseURL = baseURL
	cfg.API.Timeout = 2 * time.Second
	return NewClient(cfg, n)
}

func TestPostSuccessIsSilent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		w.Write([]byte(`{"success":true,"data":{"plan_id":"p1"}}`))
	}))
	defer server.Close()

	n := &captureNotifier{}
	client := newTestClient(server.URL, n)

	payload, err := client.Post(context.Background(), "/plan/generate", map[string]int{"days": 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload) != `{"plan_id":"p1"}` {
		t.Errorf("unexpected payload: %s", payload)
	}
	if n.count() != 0 {
		t.Errorf("success path must not notify, got %d notices", n.count())
	}
}

func TestPostNormalizesPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &captureNotifier{})

	// 路径不带斜杠也能拼出正确地址
	if _, err := client.Post(context.Background(), "plan/generate", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/plan/generate" {
		t.Errorf("expected /plan/generate, got %q", gotPath)
	}
}

func TestPostHTTP500UnparsableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	}))
	defer server.Close()

	n := &captureNotifier{}
	client := newTestClient(server.URL, n)

	_, err := client.Post(context.Background(), "/plan/generate", nil)
	if err == nil {
		t.Fatal("expected error on HTTP 500")
	}
	if err.Error() != "请求失败: 500 Internal Server Error" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if n.count() != 1 {
		t.Fatalf("expected exactly one notification, got %d", n.count())
	}
	if n.last().Kind != notify.KindError {
		t.Errorf("expected error kind, got %q", n.last().Kind)
	}
}

func TestPostLogicalFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"生成旅游方案失败"}`))
	}))
	defer server.Close()

	n := &captureNotifier{}
	client := newTestClient(server.URL, n)

	_, err := client.Post(context.Background(), "/plan/generate", nil)
	if err == nil || err.Error() != "生成旅游方案失败" {
		t.Errorf("expected backend message, got %v", err)
	}
	if n.count() != 1 {
		t.Errorf("expected exactly one notification, got %d", n.count())
	}
}

func TestPostNetworkFailure(t *testing.T) {
	n := &captureNotifier{}
	// 指向一个已关闭的地址
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL, n)

	_, err := client.Post(context.Background(), "/plan/generate", nil)
	if err == nil {
		t.Fatal("expected network error")
	}
	if err.Error() != "网络异常，请稍后重试" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if n.count() != 1 {
		t.Errorf("expected exactly one notification, got %d", n.count())
	}
}

func TestPostMalformedResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{broken`))
	}))
	defer server.Close()

	n := &captureNotifier{}
	client := newTestClient(server.URL, n)

	_, err := client.Post(context.Background(), "/plan/generate", nil)
	if err == nil {
		t.Fatal("expected decode failure")
	}
	if n.count() != 1 {
		t.Errorf("expected exactly one notification, got %d", n.count())
	}
}

func TestGetSharesDecoder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Write([]byte(`{"code":200,"data":{"status":"ok"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &captureNotifier{})

	payload, err := client.Get(context.Background(), "/health")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload) != `{"status":"ok"}` {
		t.Errorf("unexpected payload: %s", payload)
	}
}

func TestSendDeliversExactlyOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"plan_id":"p9"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &captureNotifier{})

	call := client.Send(context.Background(), "/plan/adjust", nil)

	select {
	case res := <-call.Done():
		if res.Err != nil {
			t.Fatalf("unexpected error: %v", res.Err)
		}
		if string(res.Payload) != `{"plan_id":"p9"}` {
			t.Errorf("unexpected payload: %s", res.Payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for call result")
	}

	select {
	case <-call.Done():
		t.Fatal("result delivered more than once")
	case <-time.After(50 * time.Millisecond):
	}
}
