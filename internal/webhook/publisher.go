package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	alertQueueKey = "wildfire_alert_events"
)

// Event names published by the services.
const (
	EventHotspotStatusChanged = "hotspot.status_changed"
	EventActionStarted        = "action.started"
	EventActionConcluded      = "action.concluded"
	EventRegionRiskChanged    = "region.risk_changed"
)

// AlertEvent is the payload delivered to the configured webhook endpoint.
// Only the fields relevant to the event type are set.
type AlertEvent struct {
	Event      string     `json:"event"`
	HotspotID  *uuid.UUID `json:"hotspot_id,omitempty"`
	RegionID   *uuid.UUID `json:"region_id,omitempty"`
	ActionID   *uuid.UUID `json:"action_id,omitempty"`
	Status     string     `json:"status,omitempty"`
	ActionType string     `json:"action_type,omitempty"`
	RiskLevel  int        `json:"risk_level,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}

// AlertPublisher queues alert events for asynchronous delivery.
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher is an AlertPublisher backed by a Redis list.
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher creates a new RedisAlertPublisher.
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish pushes the event onto the Redis alert queue.
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH pairs with the worker's BRPOP to form a queue.
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
