package model

import "strings"

// 场景选项
const (
	SceneStudent = "大学生独自游"
	SceneFamily  = "家庭游"
)

// 后端要求 interest 和 demand 字段不能为空，空值时使用兜底文案
const (
	DefaultInterest = "无特定兴趣"
	DefaultDemand   = "无特殊需求"
)

// FormState 是需求输入页的表单状态，整体写入快照供展示页使用。
type FormState struct {
	Scene     string        `json:"scene"`
	Days      int           `json:"days"`
	Budget    float64       `json:"budget"`
	Interests InterestFlags `json:"interests"`
	Demand    string        `json:"demand"`
}

type InterestFlags struct {
	Food    bool `json:"food"`
	History bool `json:"history"`
	Nature  bool `json:"nature"`
}

// TripRequirement 是发送给后端方案生成接口的请求体。
type TripRequirement struct {
	Scene    string  `json:"scene"`
	Days     int     `json:"days"`
	Budget   float64 `json:"budget"`
	Interest string  `json:"interest"`
	Demand   string  `json:"demand"`
}

func DefaultFormState() FormState {
	return FormState{
		Scene:  SceneStudent,
		Days:   3,
		Budget: 1500,
	}
}

// BuildRequirement 将表单状态格式化为请求体。
// 每个字段独立兜底，表单不会因校验失败而阻止提交。
func (f FormState) BuildRequirement() TripRequirement {
	scene := f.Scene
	if scene == "" {
		scene = SceneStudent
	}

	days := f.Days
	if days <= 0 {
		days = 1
	}

	budget := f.Budget
	if budget <= 0 {
		budget = 100
	}

	var labels []string
	if f.Interests.Food {
		labels = append(labels, "美食")
	}
	if f.Interests.History {
		labels = append(labels, "历史文化")
	}
	if f.Interests.Nature {
		labels = append(labels, "自然风光")
	}
	interest := strings.Join(labels, ",")
	if interest == "" {
		interest = DefaultInterest
	}

	demand := f.Demand
	if demand == "" {
		demand = DefaultDemand
	}

	return TripRequirement{
		Scene:    scene,
		Days:     days,
		Budget:   budget,
		Interest: interest,
		Demand:   demand,
	}
}
