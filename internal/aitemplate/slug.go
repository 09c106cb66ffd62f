package aitemplate

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/slug"
)

// Slug builds "ai-{first 8 of user id}-{title slug, 30 max}-{base36 ms}".
func Slug(userID uuid.UUID, title string, now time.Time) string {
	prefix := strings.ReplaceAll(userID.String(), "-", "")[:8]
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	parts := []string{"ai", prefix}
	if t := slug.Truncate(title, 30); t != "" {
		parts = append(parts, t)
	}
	return strings.Join(append(parts, ts), "-")
}
