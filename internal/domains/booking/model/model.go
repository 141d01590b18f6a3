package model

import "fmt"

const (
	EntityName = "booking"

	// HeaderRefID is the first cell of the header row in the sheet.
	HeaderRefID = "Ref ID"
)

// Column positions in the backing sheet. This is the single schema
// version the service reads and writes; it must stay synchronized with
// the sheet header (Ref ID .. Status, columns A through N).
const (
	ColRefID = iota
	ColName
	ColPhone
	ColEmail
	ColArea
	ColDate
	ColTimeSlot
	ColAdults
	ColChildren
	ColComments
	ColTransactionID
	ColUPIName
	ColScreenshotLink
	ColStatus

	ColumnCount
)

type Status string

const (
	StatusPendingVerification Status = "Pending Verification"
	StatusReserved            Status = "Reserved"
	StatusArrived             Status = "Arrived"
	StatusCompleted           Status = "Completed"
	StatusCancelled           Status = "Cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPendingVerification, StatusReserved, StatusArrived, StatusCompleted, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %s", s)
	}
}

// allowedTransitions is the forward-only lifecycle graph. Completed and
// Cancelled are terminal.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPendingVerification: {StatusReserved: true, StatusCancelled: true},
	StatusReserved:            {StatusArrived: true, StatusCancelled: true},
	StatusArrived:             {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted:           {},
	StatusCancelled:           {},
}

func (s Status) CanTransition(to Status) bool {
	m, ok := allowedTransitions[s]
	if !ok {
		return false
	}

	return m[to]
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Area string

const (
	AreaIndoor  Area = "Indoor"
	AreaLibrary Area = "Library (Smoking)"
)

func ParseArea(s string) (Area, error) {
	switch Area(s) {
	case AreaIndoor, AreaLibrary:
		return Area(s), nil
	default:
		return "", fmt.Errorf("unknown area: %s", s)
	}
}

// Booking is one reserved table. RowIndex is the 1-based row of the
// record in the backing sheet; it addresses updates and is never shown
// to guests.
type Booking struct {
	RefID          string
	Name           string
	Phone          string
	Email          string
	Area           Area
	Date           string
	TimeSlot       string
	Adults         int
	Children       int
	Comments       string
	TransactionID  string
	UPIName        string
	ScreenshotLink string
	Status         Status

	RowIndex int
}

// GroupKey identifies the capacity group a booking occupies.
func (b *Booking) GroupKey() string {
	return fmt.Sprintf("%s|%s|%s", b.Date, b.TimeSlot, b.Area)
}

// CountsTowardCapacity reports whether the booking holds adult spots in
// its group. Every non-cancelled booking holds capacity, including
// Pending Verification, so a slot cannot be double-sold while a payment
// is under review.
func (b *Booking) CountsTowardCapacity() bool {
	return b.Status != StatusCancelled
}
