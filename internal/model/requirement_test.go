package model

import (
	"strings"
	"testing"
)

func TestBuildRequirementDefaults(t *testing.T) {
	req := FormState{}.BuildRequirement()

	if req.Scene != SceneStudent {
		t.Errorf("expected default scene %q, got %q", SceneStudent, req.Scene)
	}
	if req.Days != 1 {
		t.Errorf("expected default days 1, got %d", req.Days)
	}
	if req.Budget != 100 {
		t.Errorf("expected default budget 100, got %v", req.Budget)
	}
	if req.Interest != DefaultInterest {
		t.Errorf("expected interest fallback %q, got %q", DefaultInterest, req.Interest)
	}
	if req.Demand != DefaultDemand {
		t.Errorf("expected demand fallback %q, got %q", DefaultDemand, req.Demand)
	}
}

func TestBuildRequirementNeverEmpty(t *testing.T) {
	states := []FormState{
		{},
		{Scene: SceneFamily, Days: 5, Budget: 3000},
		{Days: -1, Budget: -50, Demand: "  "},
		{Interests: InterestFlags{Food: true}},
	}

	for i, state := range states {
		req := state.BuildRequirement()
		if req.Interest == "" {
			t.Errorf("case %d: interest must never be empty", i)
		}
		if req.Demand == "" {
			t.Errorf("case %d: demand must never be empty", i)
		}
		if req.Scene == "" {
			t.Errorf("case %d: scene must never be empty", i)
		}
	}
}

func TestBuildRequirementJoinsInterests(t *testing.T) {
	state := FormState{
		Interests: InterestFlags{Food: true, History: true},
	}
	req := state.BuildRequirement()

	if req.Interest != "美食,历史文化" {
		t.Errorf("expected joined labels, got %q", req.Interest)
	}

	state.Interests.Nature = true
	req = state.BuildRequirement()
	if !strings.Contains(req.Interest, "自然风光") {
		t.Errorf("expected nature label, got %q", req.Interest)
	}
}

func TestBuildRequirementKeepsValidInput(t *testing.T) {
	state := FormState{
		Scene:  SceneFamily,
		Days:   5,
		Budget: 3000,
		Demand: "无障碍通道",
	}
	req := state.BuildRequirement()

	if req.Scene != SceneFamily || req.Days != 5 || req.Budget != 3000 {
		t.Errorf("valid fields must pass through unchanged: %+v", req)
	}
	if req.Demand != "无障碍通道" {
		t.Errorf("non-empty demand must pass through, got %q", req.Demand)
	}
}
