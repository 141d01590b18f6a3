// Package capacity decides whether a party fits into a seating area for
// a given date and time slot. It is pure: callers fetch the current
// bookings, the evaluator only counts and compares.
package capacity

import (
	"popflea/internal/domains/booking/model"
)

// Limits holds the adult occupancy limit per seating area.
type Limits struct {
	Indoor  int
	Library int
}

func (l Limits) For(area model.Area) int {
	if area == model.AreaLibrary {
		return l.Library
	}

	return l.Indoor
}

func (l Limits) Areas() []model.Area {
	return []model.Area{model.AreaIndoor, model.AreaLibrary}
}

// Decision is the outcome of evaluating a prospective booking.
// Remaining is only meaningful on rejection and states how many adult
// spots the group still has.
type Decision struct {
	Admitted  bool
	Remaining int
}

type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotFillingFast SlotStatus = "fillingFast"
	SlotFull        SlotStatus = "full"
)

type AreaAvailability struct {
	Count  int        `json:"count"`
	Limit  int        `json:"limit"`
	Status SlotStatus `json:"status"`
}

// Occupancy sums adults over bookings in the (date, timeSlot, area)
// group that still hold capacity. Children never count; a child does
// not take a seat at a table.
func Occupancy(existing []model.Booking, date, timeSlot string, area model.Area) int {
	total := 0

	for i := range existing {
		b := &existing[i]

		if b.Date != date || b.TimeSlot != timeSlot || b.Area != area {
			continue
		}

		if !b.CountsTowardCapacity() {
			continue
		}

		total += b.Adults
	}

	return total
}

// Evaluate admits the prospective booking when its adults fit within
// the remaining capacity of its group, boundary included.
func Evaluate(existing []model.Booking, prospective model.Booking, limits Limits) Decision {
	limit := limits.For(prospective.Area)
	occupied := Occupancy(existing, prospective.Date, prospective.TimeSlot, prospective.Area)

	if occupied+prospective.Adults <= limit {
		return Decision{Admitted: true, Remaining: limit - occupied - prospective.Adults}
	}

	remaining := limit - occupied
	if remaining < 0 {
		remaining = 0
	}

	return Decision{Admitted: false, Remaining: remaining}
}

// Signal grades a slot for the availability display: full at the
// limit, fillingFast from half the limit, available below that.
func Signal(count, limit int) SlotStatus {
	switch {
	case count >= limit:
		return SlotFull
	case count*2 >= limit:
		return SlotFillingFast
	default:
		return SlotAvailable
	}
}

// Availability builds the per-slot, per-area occupancy map for one date.
func Availability(existing []model.Booking, date string, timeSlots []string, limits Limits) map[string]map[string]AreaAvailability {
	availability := make(map[string]map[string]AreaAvailability, len(timeSlots))

	for _, slot := range timeSlots {
		availability[slot] = make(map[string]AreaAvailability)

		for _, area := range limits.Areas() {
			limit := limits.For(area)
			count := Occupancy(existing, date, slot, area)

			availability[slot][string(area)] = AreaAvailability{
				Count:  count,
				Limit:  limit,
				Status: Signal(count, limit),
			}
		}
	}

	return availability
}
