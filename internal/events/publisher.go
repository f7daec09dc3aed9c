// internal/events/publisher.go
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"program-service/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// Channel names
	ChannelLinksDeleted = "program:links:deleted"

	linkCachePrefix = "linkcache:"
)

// LinkCleanupPublisher handles the non-relational side of link removal:
// it drops the routing-cache entries the redirect edge keys on short link,
// then broadcasts a links.deleted event for downstream consumers.
type LinkCleanupPublisher struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewLinkCleanupPublisher(rdb *redis.Client, logger *zap.Logger) *LinkCleanupPublisher {
	return &LinkCleanupPublisher{
		rdb:    rdb,
		logger: logger,
	}
}

// LinksDeletedEvent is published once per cleanup batch.
type LinksDeletedEvent struct {
	EventType string    `json:"event_type"`
	LinkIDs   []string  `json:"link_ids"`
	Shorts    []string  `json:"short_links"`
	DeletedAt time.Time `json:"deleted_at"`
	Timestamp int64     `json:"timestamp"`
}

// CacheKey returns the routing-cache key for a link's short form.
func CacheKey(l *domain.Link) string {
	return linkCachePrefix + l.ShortLink()
}

// CleanupLinks invalidates the routing cache for the given links and
// publishes a links.deleted event. Call it only after the rows are gone
// from the store.
func (p *LinkCleanupPublisher) CleanupLinks(ctx context.Context, links []*domain.Link) error {
	if len(links) == 0 {
		return nil
	}

	keys := make([]string, 0, len(links))
	linkIDs := make([]string, 0, len(links))
	shorts := make([]string, 0, len(links))
	for _, l := range links {
		keys = append(keys, CacheKey(l))
		linkIDs = append(linkIDs, l.ID)
		shorts = append(shorts, l.ShortLink())
	}

	if err := p.rdb.Del(ctx, keys...).Err(); err != nil {
		p.logger.Error("failed to invalidate link routing cache",
			zap.Strings("link_ids", linkIDs),
			zap.Error(err))
		return fmt.Errorf("failed to invalidate link cache: %w", err)
	}

	event := LinksDeletedEvent{
		EventType: "links.deleted",
		LinkIDs:   linkIDs,
		Shorts:    shorts,
		DeletedAt: time.Now().UTC(),
		Timestamp: time.Now().Unix(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.rdb.Publish(ctx, ChannelLinksDeleted, payload).Err(); err != nil {
		p.logger.Error("failed to publish links deleted event",
			zap.Strings("link_ids", linkIDs),
			zap.Error(err))
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Info("link cleanup completed",
		zap.Int("count", len(links)),
		zap.Strings("link_ids", linkIDs))

	return nil
}
