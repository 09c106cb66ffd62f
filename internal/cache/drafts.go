package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/redis/go-redis/v9"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
)

const (
	draftPrefix = "draft:"
	fieldPrefix = "f:"
	dirtyPrefix = "d:"

	// DraftTTL is how long an untouched draft survives.
	DraftTTL = 48 * time.Hour

	draftAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	draftIDLength = 16
)

// ErrDraftNotFound is returned for unknown or expired drafts.
var ErrDraftNotFound = errors.New("draft not found")

// Draft is a buyer's in-progress edit of a template.
type Draft struct {
	ID     string
	Slug   string
	Style  string
	Fields fields.Map
	// Dirty lists keys the buyer changed since the draft was seeded.
	Dirty []string
}

// Drafts keeps drafts as Valkey hashes: meta entries plus one entry per
// field value and one marker per edited key.
type Drafts struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDrafts returns a draft store.
func NewDrafts(client *redis.Client) *Drafts {
	return &Drafts{client: client, ttl: DraftTTL}
}

// ValidDraftID reports whether id has the shape Create produces.
func ValidDraftID(id string) bool {
	if len(id) != draftIDLength {
		return false
	}
	for _, r := range id {
		if !strings.ContainsRune(draftAlphabet, r) {
			return false
		}
	}
	return true
}

// Create seeds a new draft for slug and style.
func (d *Drafts) Create(ctx context.Context, slug, style string, seed fields.Map) (*Draft, error) {
	id, err := gonanoid.Generate(draftAlphabet, draftIDLength)
	if err != nil {
		return nil, fmt.Errorf("draft id: %w", err)
	}
	values := map[string]any{"slug": slug, "style": style}
	for k, v := range seed {
		values[fieldPrefix+k] = v
	}

	key := draftPrefix + id
	_, err = d.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key, values)
		p.Expire(ctx, key, d.ttl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}
	return &Draft{ID: id, Slug: slug, Style: style, Fields: seed.Clone()}, nil
}

// Get loads a draft and refreshes its TTL.
func (d *Drafts) Get(ctx context.Context, id string) (*Draft, error) {
	key := draftPrefix + id
	var all *redis.MapStringStringCmd
	_, err := d.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		all = p.HGetAll(ctx, key)
		p.Expire(ctx, key, d.ttl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	raw := all.Val()
	if len(raw) == 0 {
		return nil, ErrDraftNotFound
	}

	dr := &Draft{ID: id, Slug: raw["slug"], Style: raw["style"], Fields: fields.Map{}}
	for k, v := range raw {
		switch {
		case strings.HasPrefix(k, fieldPrefix):
			dr.Fields[strings.TrimPrefix(k, fieldPrefix)] = v
		case strings.HasPrefix(k, dirtyPrefix):
			dr.Dirty = append(dr.Dirty, strings.TrimPrefix(k, dirtyPrefix))
		}
	}
	return dr, nil
}

// Apply writes edited values and marks them dirty. It fails with
// ErrDraftNotFound when the draft has expired.
func (d *Drafts) Apply(ctx context.Context, id string, edits fields.Map) (*Draft, error) {
	key := draftPrefix + id
	n, err := d.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("apply draft: %w", err)
	}
	if n == 0 {
		return nil, ErrDraftNotFound
	}
	if len(edits) > 0 {
		values := make(map[string]any, 2*len(edits))
		for k, v := range edits {
			values[fieldPrefix+k] = v
			values[dirtyPrefix+k] = "1"
		}
		if err := d.client.HSet(ctx, key, values).Err(); err != nil {
			return nil, fmt.Errorf("apply draft: %w", err)
		}
	}
	return d.Get(ctx, id)
}

// Delete drops a draft once it has been turned into an order.
func (d *Drafts) Delete(ctx context.Context, id string) error {
	return d.client.Del(ctx, draftPrefix+id).Err()
}
