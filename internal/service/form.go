package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"travelplan-frontend/internal/model"
	"travelplan-frontend/internal/storage"
	"travelplan-frontend/pkg/logger"
)

// Poster 是控制器眼中的网关：一次请求，拿到载荷或错误。
// 失败通知由网关负责，调用方不再重复提示。
type Poster interface {
	Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
}

// FormService 持有需求输入页的表单状态，字段之间不做联合校验。
type FormService struct {
	mu    sync.Mutex
	state model.FormState
	gw    Poster
	store storage.Store
}

func NewFormService(gw Poster, store storage.Store) *FormService {
	return &FormService{
		state: model.DefaultFormState(),
		gw:    gw,
		store: store,
	}
}

func (s *FormService) SetScene(scene string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Scene = scene
}

func (s *FormService) SetDays(days int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Days = days
}

func (s *FormService) SetBudget(budget float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Budget = budget
}

func (s *FormService) SetInterest(name string, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch name {
	case "food":
		s.state.Interests.Food = on
	case "history":
		s.state.Interests.History = on
	case "nature":
		s.state.Interests.Nature = on
	}
}

func (s *FormService) SetDemand(demand string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Demand = demand
}

func (s *FormService) State() model.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit 格式化需求并调用方案生成接口。
// 成功时把原始表单状态和完整响应载荷写入快照，返回展示页路径；
// 失败时不改动任何状态（网关已完成用户通知）。
func (s *FormService) Submit(ctx context.Context) (string, error) {
	state := s.State()
	req := state.BuildRequirement()
	logger.Infof("提交给后端的数据: %+v", req)

	payload, err := s.gw.Post(ctx, "/plan/generate", req)
	if err != nil {
		return "", err
	}

	if err := s.store.Set(storage.SlotRequirement, state); err != nil {
		return "", fmt.Errorf("保存需求快照失败: %w", err)
	}
	if err := s.store.Set(storage.SlotItinerary, payload); err != nil {
		return "", fmt.Errorf("保存行程快照失败: %w", err)
	}

	return "/plan", nil
}
