package shared

import (
	"strings"
)

// BuildCacheKey joins key parts with ":" skipping empty parts.
func BuildCacheKey(parts ...string) string {
	filtered := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		filtered = append(filtered, part)
	}

	return strings.Join(filtered, ":")
}
