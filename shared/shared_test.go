package shared_test

import (
	"popflea/shared"
	"testing"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			parts:    []string{"limiter"},
			expected: "limiter",
		},
		{
			name:     "multiple parts",
			parts:    []string{"limiter", "10.0.0.1", "curl/8.0"},
			expected: "limiter:10.0.0.1:curl/8.0",
		},
		{
			name:     "empty parts are skipped",
			parts:    []string{"limiter", "", "10.0.0.1"},
			expected: "limiter:10.0.0.1",
		},
		{
			name:     "no parts",
			parts:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}
