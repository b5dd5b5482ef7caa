package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"travelplan-frontend/internal/model"
	"travelplan-frontend/internal/storage"
	"travelplan-frontend/pkg/logger"
)

// ErrMissingPlanID 表示行程快照里没有方案ID，调整请求被拦截。
// 这是唯一不经过通知队列的失败：由页面以阻断式提示呈现。
var ErrMissingPlanID = errors.New("无法找到方案ID，请重新生成方案")

var adjustLabels = map[string]string{
	model.AdjustWeather: "天气",
	model.AdjustCrowd:   "人流量",
}

// PlanService 是方案展示页的控制器：读取快照、计算预算汇总、
// 发起动态调整请求并以最后一次成功的结果覆盖快照。
type PlanService struct {
	mu        sync.Mutex
	gw        Poster
	store     storage.Store
	form      model.FormState
	itinerary model.Itinerary
}

func NewPlanService(gw Poster, store storage.Store) *PlanService {
	return &PlanService{gw: gw, store: store}
}

// Load 读取快照并进入就绪状态。返回 false 表示没有需求快照，
// 调用方应重定向回需求输入页。
// 行程快照按 plan 字段、裸行程、内置示例的顺序兜底。
func (p *PlanService) Load() bool {
	var form model.FormState
	if err := p.store.Get(storage.SlotRequirement, &form); err != nil {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.form = form

	var raw json.RawMessage
	if err := p.store.Get(storage.SlotItinerary, &raw); err != nil {
		logger.Warnf("读取行程快照失败: %v", err)
		p.itinerary = model.SampleItinerary()
		return true
	}

	if it, ok := model.UnwrapItinerary(raw); ok {
		p.itinerary = it
	} else {
		logger.Warnf("解析行程数据失败，使用内置示例行程")
		p.itinerary = model.SampleItinerary()
	}
	return true
}

func (p *PlanService) Form() model.FormState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

func (p *PlanService) Itinerary() model.Itinerary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.itinerary
}

// TotalBudget 是各天 daily_total 之和，缺失的按 0 计。
func (p *PlanService) TotalBudget() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := 0.0
	for _, day := range p.itinerary.DailyPlans {
		total += day.DailyTotal
	}
	return total
}

func (p *PlanService) OverBudget() bool {
	return p.TotalBudget() > p.Form().Budget
}

func (p *PlanService) Remaining() float64 {
	return p.Form().Budget - p.TotalBudget()
}

// AdjustPlan 按天气或人流量重新生成方案。
// 快照里没有方案ID时返回 ErrMissingPlanID，不发起任何请求。
// 成功时用响应的 plan 字段替换内存中的行程（没有 plan 字段则
// 整个响应体兜底），并用完整响应覆盖行程快照，返回确认文案。
func (p *PlanService) AdjustPlan(ctx context.Context, kind string) (string, error) {
	var raw json.RawMessage
	planID := ""
	if err := p.store.Get(storage.SlotItinerary, &raw); err == nil {
		planID = model.ExtractPlanID(raw)
	}
	if planID == "" {
		return "", ErrMissingPlanID
	}

	payload, err := p.gw.Post(ctx, "/plan/adjust", model.AdjustRequest{
		PlanID:     planID,
		AdjustType: kind,
	})
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	if it, ok := model.UnwrapItinerary(payload); ok {
		p.itinerary = it
	}
	p.mu.Unlock()

	if err := p.store.Set(storage.SlotItinerary, payload); err != nil {
		logger.Errorf("保存调整后的行程快照失败: %v", err)
	}

	label, ok := adjustLabels[kind]
	if !ok {
		label = kind
	}
	return fmt.Sprintf("已根据\"%s\"重新生成旅游方案", label), nil
}
