package model_test

import (
	"popflea/internal/domains/booking/model"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    model.Status
		expectError bool
	}{
		{
			name:     "pending verification",
			input:    "Pending Verification",
			expected: model.StatusPendingVerification,
		},
		{
			name:     "reserved",
			input:    "Reserved",
			expected: model.StatusReserved,
		},
		{
			name:     "arrived",
			input:    "Arrived",
			expected: model.StatusArrived,
		},
		{
			name:     "completed",
			input:    "Completed",
			expected: model.StatusCompleted,
		},
		{
			name:     "cancelled",
			input:    "Cancelled",
			expected: model.StatusCancelled,
		},
		{
			name:        "unknown status",
			input:       "Checked In",
			expectError: true,
		},
		{
			name:        "case sensitive",
			input:       "reserved",
			expectError: true,
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := model.ParseStatus(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error for input %q, got none", tt.input)
				}

				return
			}

			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if status != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, status)
			}
		})
	}
}

func TestStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    model.Status
		to      model.Status
		allowed bool
	}{
		{
			name:    "pending to reserved",
			from:    model.StatusPendingVerification,
			to:      model.StatusReserved,
			allowed: true,
		},
		{
			name:    "pending to cancelled",
			from:    model.StatusPendingVerification,
			to:      model.StatusCancelled,
			allowed: true,
		},
		{
			name:    "pending to arrived skips reservation",
			from:    model.StatusPendingVerification,
			to:      model.StatusArrived,
			allowed: false,
		},
		{
			name:    "reserved to arrived",
			from:    model.StatusReserved,
			to:      model.StatusArrived,
			allowed: true,
		},
		{
			name:    "reserved to completed skips arrival",
			from:    model.StatusReserved,
			to:      model.StatusCompleted,
			allowed: false,
		},
		{
			name:    "arrived to completed",
			from:    model.StatusArrived,
			to:      model.StatusCompleted,
			allowed: true,
		},
		{
			name:    "arrived to cancelled",
			from:    model.StatusArrived,
			to:      model.StatusCancelled,
			allowed: true,
		},
		{
			name:    "completed is terminal",
			from:    model.StatusCompleted,
			to:      model.StatusCancelled,
			allowed: false,
		},
		{
			name:    "cancelled is terminal",
			from:    model.StatusCancelled,
			to:      model.StatusReserved,
			allowed: false,
		},
		{
			name:    "no backward transition",
			from:    model.StatusArrived,
			to:      model.StatusReserved,
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransition(tt.to); got != tt.allowed {
				t.Errorf("CanTransition(%s -> %s): expected %v, got %v", tt.from, tt.to, tt.allowed, got)
			}
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	terminal := []model.Status{model.StatusCompleted, model.StatusCancelled}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}

	active := []model.Status{model.StatusPendingVerification, model.StatusReserved, model.StatusArrived}
	for _, s := range active {
		if s.Terminal() {
			t.Errorf("expected %s not to be terminal", s)
		}
	}
}

func TestParseArea(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    model.Area
		expectError bool
	}{
		{
			name:     "indoor",
			input:    "Indoor",
			expected: model.AreaIndoor,
		},
		{
			name:     "library",
			input:    "Library (Smoking)",
			expected: model.AreaLibrary,
		},
		{
			name:        "unknown area",
			input:       "Terrace",
			expectError: true,
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area, err := model.ParseArea(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error for input %q, got none", tt.input)
				}

				return
			}

			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if area != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, area)
			}
		})
	}
}

func TestBooking_GroupKey(t *testing.T) {
	b := model.Booking{
		Date:     "2025-12-24",
		TimeSlot: "18:00",
		Area:     model.AreaIndoor,
	}

	expected := "2025-12-24|18:00|Indoor"
	if got := b.GroupKey(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestBooking_CountsTowardCapacity(t *testing.T) {
	holding := []model.Status{
		model.StatusPendingVerification,
		model.StatusReserved,
		model.StatusArrived,
		model.StatusCompleted,
	}

	for _, s := range holding {
		b := model.Booking{Status: s}
		if !b.CountsTowardCapacity() {
			t.Errorf("expected %s booking to hold capacity", s)
		}
	}

	cancelled := model.Booking{Status: model.StatusCancelled}
	if cancelled.CountsTowardCapacity() {
		t.Error("expected cancelled booking to release capacity")
	}
}
