package gateway

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"travelplan-frontend/internal/model"
	"travelplan-frontend/pkg/logger"
)

// MockResponder 在不发起网络请求的情况下，按路径和请求体
// 构造与真实后端同形状的响应信封。
type MockResponder struct{}

func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

func (m *MockResponder) Respond(path string, body interface{}) interface{} {
	req := map[string]interface{}{}
	if raw, err := json.Marshal(body); err == nil {
		json.Unmarshal(raw, &req)
	}

	switch {
	case strings.Contains(path, "/plan/generate"):
		days := 3
		if v, ok := req["days"].(float64); ok && v > 0 {
			days = int(v)
		}
		return map[string]interface{}{
			"success": true,
			"message": "旅游方案生成成功",
			"data": map[string]interface{}{
				"plan_id": uuid.NewString(),
				"plan":    model.DemoItinerary(days, 1),
			},
		}

	case strings.Contains(path, "/plan/adjust"):
		adjustType, _ := req["adjust_type"].(string)
		// 天气突变转向低预算的备选安排，景区拥挤错峰后开销略降
		scale := 1.0
		switch adjustType {
		case model.AdjustWeather:
			scale = 0.85
		case model.AdjustCrowd:
			scale = 0.9
		}
		return map[string]interface{}{
			"success": true,
			"message": fmt.Sprintf("方案%s调整成功", adjustType),
			"data": map[string]interface{}{
				"plan_id": uuid.NewString(),
				"plan":    model.DemoItinerary(3, scale),
			},
		}
	}

	return map[string]interface{}{
		"success": true,
		"data":    []interface{}{},
	}
}

// mockRoundTrip 跳过网络层，等待固定的模拟延迟后把构造的信封
// 送进与真实路径相同的判定逻辑。延迟不可取消。
func (c *Client) mockRoundTrip(path string, body interface{}) (json.RawMessage, error) {
	fullURL := c.buildURL(path)
	logger.Infof("[MOCK模式] 模拟请求: %s", fullURL)

	c.sleep()

	raw, err := json.Marshal(c.mock.Respond(path, body))
	if err != nil {
		logger.Errorf("[MOCK模式] 模拟错误: %s，%v", fullURL, err)
		return nil, c.fail("模拟请求失败")
	}

	data, err := decodeEnvelope(raw)
	if err != nil {
		logger.Errorf("[MOCK模式] 模拟错误: %s，%v", fullURL, err)
		return nil, c.fail(err.Error())
	}
	return data, nil
}
