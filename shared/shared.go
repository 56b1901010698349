package shared

import (
	"bizdesk/shared/cache"
	"bizdesk/shared/dto"
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeySeparator = ":"
)

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

// InvalidateCaches clears every cache entry under the given prefix. Failures
// are logged and swallowed: a stale cache entry expires on its own TTL.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func FilterByField(field, table string, value any) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
