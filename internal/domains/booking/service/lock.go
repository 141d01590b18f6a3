package service

import (
	"fmt"
	"strconv"
	"sync"

	"popflea/internal/domains/booking/model"
)

// groupLocker hands out one mutex per (date, timeSlot, area) group so
// concurrent creations for the same slot serialize their
// read-evaluate-append section. Locks are never released from the map;
// the key space is bounded by dates x slots x areas.
type groupLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newGroupLocker() *groupLocker {
	return &groupLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

func (l *groupLocker) Get(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}

	return lock
}

// refSequence issues booking reference ids. It never reuses an id this
// process has issued, and it never issues one lower than the highest
// numeric id already in the sheet, so concurrent creations cannot
// collide the way raw row counting does.
type refSequence struct {
	mu   sync.Mutex
	last int
}

func (s *refSequence) Next(existing []model.Booking) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.last

	for i := range existing {
		if n, err := strconv.Atoi(existing[i].RefID); err == nil && n > next {
			next = n
		}
	}

	s.last = next + 1

	return fmt.Sprintf("%03d", s.last)
}
