package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"travelplan-frontend/internal/config"
	"travelplan-frontend/internal/notify"
	"travelplan-frontend/internal/utils"
	"travelplan-frontend/pkg/logger"
)

// Result 是一次请求的最终结果，Payload 与 Err 恰好一个有效。
type Result struct {
	Payload json.RawMessage
	Err     error
}

// Call 是异步请求的完成句柄，Done 通道恰好送达一次结果。
type Call struct {
	done chan Result
}

func (c *Call) Done() <-chan Result {
	return c.done
}

// Client 负责拼接请求地址、发起单次请求并把各种响应信封
// 归一化为载荷或错误。所有失败路径都会触发且仅触发一次通知。
type Client struct {
	baseURL  string
	http     *http.Client
	notifier notify.Notifier
	mock     *MockResponder
	latency  time.Duration
}

func NewClient(cfg *config.Config, notifier notify.Notifier) *Client {
	c := &Client{
		baseURL:  cfg.API.BaseURL,
		http:     utils.NewHTTPClient(cfg.API.Timeout),
		notifier: notifier,
	}
	if cfg.API.Mock {
		c.mock = NewMockResponder()
		c.latency = cfg.API.MockLatency
	}
	return c
}

// buildURL 确保路径以 / 开头，并避免和基础地址拼出重复的斜杠。
func (c *Client) buildURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if strings.HasSuffix(c.baseURL, "/") {
		path = path[1:]
	}
	return c.baseURL + path
}

// fail 是统一的失败出口：发一条错误通知并返回同文案的错误。
func (c *Client) fail(msg string) error {
	c.notifier.Notify(msg, notify.KindError)
	return errors.New(msg)
}

// Post 发起一次 JSON POST 并返回归一化后的载荷。
func (c *Client) Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	if c.mock != nil {
		return c.mockRoundTrip(path, body)
	}

	fullURL := c.buildURL(path)

	payload, err := json.Marshal(body)
	if err != nil {
		logger.Errorf("[请求异常] %s，异常信息：%v", fullURL, err)
		return nil, c.fail("请求处理异常")
	}
	logger.Debugf("[请求接口] %s，参数：%s", fullURL, payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(payload))
	if err != nil {
		logger.Errorf("[请求异常] %s，异常信息：%v", fullURL, err)
		return nil, c.fail("请求处理异常")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.roundTrip(req)
}

// Get 发起一次 GET 请求，与 Post 共用信封判定逻辑。
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	if c.mock != nil {
		return c.mockRoundTrip(path, nil)
	}

	fullURL := c.buildURL(path)
	logger.Debugf("[GET请求] %s", fullURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		logger.Errorf("[请求异常] %s，异常信息：%v", fullURL, err)
		return nil, c.fail("请求处理异常")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.roundTrip(req)
}

func (c *Client) roundTrip(req *http.Request) (json.RawMessage, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Errorf("[请求异常] %s，异常信息：%v", req.URL, err)
		return nil, c.fail("网络异常，请稍后重试")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Errorf("[请求异常] %s，异常信息：%v", req.URL, err)
		return nil, c.fail("网络异常，请稍后重试")
	}

	logger.Debugf("[响应接口] %s，状态码：%d", req.URL, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := protocolMessage(resp.StatusCode, http.StatusText(resp.StatusCode), body)
		logger.Errorf("[错误响应] 状态码: %d，错误信息：%s", resp.StatusCode, msg)
		return nil, c.fail(msg)
	}

	data, err := decodeEnvelope(body)
	if err != nil {
		logger.Errorf("[接口错误] %s，错误信息：%v", req.URL, err)
		return nil, c.fail(err.Error())
	}
	return data, nil
}

func (c *Client) sleep() {
	if c.latency > 0 {
		time.Sleep(c.latency)
	}
}

// Send 异步发起请求并立即返回句柄。在途请求数量不设上限，
// 多个调整请求并发时以最后完成的为准。
func (c *Client) Send(ctx context.Context, path string, body interface{}) *Call {
	call := &Call{done: make(chan Result, 1)}
	go func() {
		payload, err := c.Post(ctx, path, body)
		call.done <- Result{Payload: payload, Err: err}
	}()
	return call
}
