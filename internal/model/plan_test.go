package model

import (
	"encoding/json"
	"testing"
)

func TestUnwrapItineraryWrapped(t *testing.T) {
	raw := json.RawMessage(`{"plan_id":"p1","plan":{"daily_plans":[{"day":1,"daily_total":500}]}}`)

	it, ok := UnwrapItinerary(raw)
	if !ok {
		t.Fatal("expected wrapped payload to unwrap")
	}
	if len(it.DailyPlans) != 1 || it.DailyPlans[0].DailyTotal != 500 {
		t.Errorf("unexpected itinerary: %+v", it)
	}
}

func TestUnwrapItineraryBare(t *testing.T) {
	raw := json.RawMessage(`{"daily_plans":[{"day":1},{"day":2}]}`)

	it, ok := UnwrapItinerary(raw)
	if !ok {
		t.Fatal("expected bare payload to parse")
	}
	if len(it.DailyPlans) != 2 {
		t.Errorf("expected 2 daily plans, got %d", len(it.DailyPlans))
	}
}

func TestUnwrapItineraryNoPlanFieldFallsBackToRaw(t *testing.T) {
	// 调整响应缺少 plan 字段时，整个响应体自身兜底
	raw := json.RawMessage(`{"plan_id":"p2","adjust_type":"weather"}`)

	it, ok := UnwrapItinerary(raw)
	if !ok {
		t.Fatal("expected raw body fallback to succeed")
	}
	if len(it.DailyPlans) != 0 {
		t.Errorf("raw fallback should carry no daily plans, got %d", len(it.DailyPlans))
	}
}

func TestUnwrapItineraryInvalid(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage(`"just a string"`), json.RawMessage(`{{`)} {
		if _, ok := UnwrapItinerary(raw); ok {
			t.Errorf("expected %q to fail unwrapping", raw)
		}
	}
}

func TestExtractPlanID(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`{"plan_id":"p1","plan":{}}`, "p1"},
		{`{"plan_id":42}`, "42"},
		{`{"plan":{}}`, ""},
		{`{"plan_id":null}`, ""},
		{`not json`, ""},
	}

	for _, tc := range cases {
		if got := ExtractPlanID(json.RawMessage(tc.raw)); got != tc.want {
			t.Errorf("ExtractPlanID(%s) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestDemoItineraryTotals(t *testing.T) {
	it := DemoItinerary(5, 1)

	if len(it.DailyPlans) != 5 {
		t.Fatalf("expected 5 daily plans, got %d", len(it.DailyPlans))
	}

	for _, day := range it.DailyPlans {
		sum := 0.0
		for _, item := range day.Schedule {
			sum += item.Budget
		}
		if sum != day.DailyTotal {
			t.Errorf("day %d: schedule sums to %v, daily_total is %v", day.Day, sum, day.DailyTotal)
		}
	}
}
