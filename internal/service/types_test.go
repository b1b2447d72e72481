package service_test

import (
	"testing"

	"taskman/internal/service"
)

func TestPriorityFromSelector(t *testing.T) {
	tests := []struct {
		sel  int
		want service.Priority
	}{
		{1, service.High},
		{2, service.Medium},
		{3, service.Low},
		{0, service.Low},
		{5, service.Low},
		{-1, service.Low},
	}

	for _, tt := range tests {
		if got := service.PriorityFromSelector(tt.sel); got != tt.want {
			t.Errorf("PriorityFromSelector(%d) = %v, want %v", tt.sel, got, tt.want)
		}
	}
}

func TestPriorityRankOrder(t *testing.T) {
	if !(service.High.Rank() < service.Medium.Rank() && service.Medium.Rank() < service.Low.Rank()) {
		t.Errorf("expected High < Medium < Low, got %d %d %d",
			service.High.Rank(), service.Medium.Rank(), service.Low.Rank())
	}
	if got := service.Priority(9).Rank(); got != service.Low.Rank() {
		t.Errorf("expected unknown priority to rank as Low, got %d", got)
	}
}

func TestPriorityLabel(t *testing.T) {
	tests := []struct {
		p    service.Priority
		want string
	}{
		{service.High, "[HIGH]"},
		{service.Medium, "[MEDIUM]"},
		{service.Low, "[LOW]"},
		{service.Priority(0), "[LOW]"},
	}

	for _, tt := range tests {
		if got := tt.p.Label(); got != tt.want {
			t.Errorf("Priority(%d).Label() = %q, want %q", int(tt.p), got, tt.want)
		}
	}
}

func TestPriorityString(t *testing.T) {
	if got := service.Medium.String(); got != "medium" {
		t.Errorf("expected %q, got %q", "medium", got)
	}
	if got := service.Priority(7).String(); got != "unknown" {
		t.Errorf("expected %q, got %q", "unknown", got)
	}
}
