// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	previewPrefix = "preview:"

	// DefaultPreviewTTL is how long a rendered preview stays cached.
	DefaultPreviewTTL = 10 * time.Minute
)

// PreviewCache stores rendered template previews. Previews depend only on
// slug, style and the query parameters, so they are safe to share.
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache returns a cache with ttl, or DefaultPreviewTTL when zero.
func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	if ttl == 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewCache{client: client, ttl: ttl}
}

// PreviewKey builds the key for one preview. The variable parts are hashed
// so recipient names never appear in key listings.
func PreviewKey(slug, style string, params ...string) string {
	h := sha256.Sum256([]byte(strings.Join(params, "\x00")))
	return slug + ":" + style + ":" + hex.EncodeToString(h[:8])
}

// Get returns the cached HTML for key.
func (c *PreviewCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, previewPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("preview cache get", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores html under key.
func (c *PreviewCache) Set(ctx context.Context, key string, html []byte) {
	if err := c.client.Set(ctx, previewPrefix+key, html, c.ttl).Err(); err != nil {
		slog.Warn("preview cache set", "key", key, "error", err)
	}
}

// InvalidateSlug drops every cached preview of slug.
func (c *PreviewCache) InvalidateSlug(ctx context.Context, slug string) int {
	return c.deleteMatching(ctx, previewPrefix+slug+":*")
}

// InvalidateAll drops every cached preview.
func (c *PreviewCache) InvalidateAll(ctx context.Context) int {
	n := c.deleteMatching(ctx, previewPrefix+"*")
	if n > 0 {
		slog.Info("preview cache cleared", "deleted", n)
	}
	return n
}

func (c *PreviewCache) deleteMatching(ctx context.Context, pattern string) int {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			slog.Warn("preview cache scan", "pattern", pattern, "error", err)
			return deleted
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("preview cache delete", "error", err)
			} else {
				deleted += len(keys)
			}
		}
		cursor = next
		if cursor == 0 {
			return deleted
		}
	}
}
