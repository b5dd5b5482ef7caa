package model

import "encoding/json"

// 动态调整类型
const (
	AdjustWeather = "weather"
	AdjustCrowd   = "crowd"
)

// AdjustRequest 是发送给方案调整接口的请求体。
type AdjustRequest struct {
	PlanID     string `json:"plan_id"`
	AdjustType string `json:"adjust_type"`
}

// Itinerary 是后端生成的行程方案。
type Itinerary struct {
	Title        string      `json:"title,omitempty"`
	TotalDays    int         `json:"total_days,omitempty"`
	TotalBudget  float64     `json:"total_budget,omitempty"`
	DailyPlans   []DailyPlan `json:"daily_plans"`
	Tips         []string    `json:"tips,omitempty"`
	SpecialNotes string      `json:"special_notes,omitempty"`
}

type DailyPlan struct {
	Day        int            `json:"day"`
	Date       string         `json:"date"`
	Schedule   []ScheduleItem `json:"schedule"`
	DailyTotal float64        `json:"daily_total"`
}

type ScheduleItem struct {
	Time           string  `json:"time"`
	Attraction     string  `json:"attraction"`
	Transportation string  `json:"transportation"`
	Dining         string  `json:"dining"`
	Budget         float64 `json:"budget"`
}

// UnwrapItinerary 解析行程快照，兼容两种形状：
// 顶层带 plan 字段的包装结构，或快照本身就是行程。
// 两者都解析失败时返回 false，由调用方回退到内置示例行程。
func UnwrapItinerary(raw json.RawMessage) (Itinerary, bool) {
	if len(raw) == 0 {
		return Itinerary{}, false
	}

	var wrapped struct {
		Plan *Itinerary `json:"plan"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Plan != nil {
		return *wrapped.Plan, true
	}

	var it Itinerary
	if err := json.Unmarshal(raw, &it); err != nil {
		return Itinerary{}, false
	}
	return it, true
}

// ExtractPlanID 从行程快照中取出方案ID。
// 后端可能返回字符串或数字形式的ID，统一转成字符串；缺失时返回空串。
func ExtractPlanID(raw json.RawMessage) string {
	var env struct {
		PlanID json.RawMessage `json:"plan_id"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || len(env.PlanID) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(env.PlanID, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(env.PlanID, &n); err == nil {
		return n.String()
	}
	return ""
}
