package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

const defaultFeedCapacity = 200

type activityService struct {
	mu       sync.RWMutex
	events   []domain.ActivityEvent
	capacity int
	log      zerolog.Logger
}

// NewActivityService returns an ActivityService backed by a bounded
// in-memory ring: once capacity is reached, the oldest events fall off.
// If capacity <= 0, defaultFeedCapacity is used.
func NewActivityService(capacity int, log zerolog.Logger) ports.ActivityService {
	if capacity <= 0 {
		capacity = defaultFeedCapacity
	}
	return &activityService{capacity: capacity, log: log}
}

// Record appends one processed event to the feed.
func (s *activityService) Record(_ context.Context, event domain.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) > s.capacity {
		s.events = s.events[len(s.events)-s.capacity:]
	}
	s.log.Debug().
		Str("type", string(event.Type)).
		Str("entity", event.Entity).
		Int("entity_id", event.EntityID).
		Msg("activity recorded")
	return nil
}

// Recent returns up to limit events, newest first.
func (s *activityService) Recent(_ context.Context, limit int) ([]domain.ActivityEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}
	out := make([]domain.ActivityEvent, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}
