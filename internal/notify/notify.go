package notify

import (
	"sync"
	"time"
)

type Kind string

const (
	KindError   Kind = "error"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
)

// Notifier 是各组件向用户发送瞬态提示的入口。
// 网关在每条失败路径上恰好调用一次。
type Notifier interface {
	Notify(message string, kind Kind)
}

// Notice 是一条待展示的提示，到期后自动消失。
type Notice struct {
	Message   string
	Kind      Kind
	ExpiresAt time.Time
}

// Sink 是进程级的提示队列：不去重、不限量，并发提示依次叠加。
type Sink struct {
	mu      sync.Mutex
	ttl     time.Duration
	notices []Notice
}

func NewSink(ttl time.Duration) *Sink {
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	return &Sink{ttl: ttl}
}

// ensure 懒初始化提示队列，重复调用无副作用。
func (s *Sink) ensure() {
	if s.notices == nil {
		s.notices = make([]Notice, 0, 4)
	}
}

func (s *Sink) Notify(message string, kind Kind) {
	if kind == "" {
		kind = KindError
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensure()
	s.notices = append(s.notices, Notice{
		Message:   message,
		Kind:      kind,
		ExpiresAt: time.Now().Add(s.ttl),
	})
}

// Active 返回尚未到期的提示，并顺带清理已过期的条目。
func (s *Sink) Active() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	live := s.notices[:0]
	for _, n := range s.notices {
		if n.ExpiresAt.After(now) {
			live = append(live, n)
		}
	}
	s.notices = live

	out := make([]Notice, len(live))
	copy(out, live)
	return out
}
