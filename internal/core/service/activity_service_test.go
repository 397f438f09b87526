package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/gamedeck/gamedeck/internal/core/domain"
)

func TestActivityService_RecentNewestFirst(t *testing.T) {
	svc := NewActivityService(10, discardLogger)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := svc.Record(ctx, domain.ActivityEvent{Type: domain.ActivityGameCreated, Entity: "game", EntityID: i})
		if err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	events, err := svc.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, want := range []int{3, 2, 1} {
		if events[i].EntityID != want {
			t.Fatalf("event %d: expected entity id %d, got %d", i, want, events[i].EntityID)
		}
	}
}

func TestActivityService_LimitCapsResult(t *testing.T) {
	svc := NewActivityService(10, discardLogger)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_ = svc.Record(ctx, domain.ActivityEvent{Type: domain.ActivityGameUpdated, Entity: "game", EntityID: i})
	}

	events, _ := svc.Recent(ctx, 2)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].EntityID != 5 || events[1].EntityID != 4 {
		t.Fatalf("expected newest two, got %v", events)
	}
}

func TestActivityService_CapacityDropsOldest(t *testing.T) {
	svc := NewActivityService(3, discardLogger)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_ = svc.Record(ctx, domain.ActivityEvent{
			Type:     domain.ActivityNavigationSaved,
			Entity:   "navigation",
			EntityID: i,
			Detail:   fmt.Sprintf("item %d", i),
		})
	}

	events, _ := svc.Recent(ctx, 0)
	if len(events) != 3 {
		t.Fatalf("expected feed capped at 3, got %d", len(events))
	}
	for i, want := range []int{5, 4, 3} {
		if events[i].EntityID != want {
			t.Fatalf("event %d: expected entity id %d, got %d", i, want, events[i].EntityID)
		}
	}
}
