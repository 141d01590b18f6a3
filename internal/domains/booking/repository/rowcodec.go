package repository

import (
	"strconv"

	"popflea/internal/domains/booking/model"
)

// refPlaceholder marks rows whose reference id was never assigned.
const refPlaceholder = "N/A"

func cell(raw []string, idx int) string {
	if idx < len(raw) {
		return raw[idx]
	}

	return ""
}

// ParseRow maps one positional sheet row onto a Booking. It returns nil
// for the header row, rows without a name, rows without a real
// reference id, and rows whose adult count does not parse to at least
// one. Dropping instead of failing keeps listings resilient to the
// garbage rows a shared sheet accumulates.
func ParseRow(raw []string, rowIndex int) *model.Booking {
	refID := cell(raw, model.ColRefID)

	if refID == model.HeaderRefID {
		return nil
	}

	if refID == "" || refID == refPlaceholder {
		return nil
	}

	name := cell(raw, model.ColName)
	if name == "" {
		return nil
	}

	adults, err := strconv.Atoi(cell(raw, model.ColAdults))
	if err != nil || adults < 1 {
		return nil
	}

	children, err := strconv.Atoi(cell(raw, model.ColChildren))
	if err != nil || children < 0 {
		children = 0
	}

	status := model.StatusReserved
	if raw := cell(raw, model.ColStatus); raw != "" {
		parsed, err := model.ParseStatus(raw)
		if err != nil {
			return nil
		}

		status = parsed
	}

	return &model.Booking{
		RefID:          refID,
		Name:           name,
		Phone:          cell(raw, model.ColPhone),
		Email:          cell(raw, model.ColEmail),
		Area:           model.Area(cell(raw, model.ColArea)),
		Date:           cell(raw, model.ColDate),
		TimeSlot:       cell(raw, model.ColTimeSlot),
		Adults:         adults,
		Children:       children,
		Comments:       cell(raw, model.ColComments),
		TransactionID:  cell(raw, model.ColTransactionID),
		UPIName:        cell(raw, model.ColUPIName),
		ScreenshotLink: cell(raw, model.ColScreenshotLink),
		Status:         status,
		RowIndex:       rowIndex,
	}
}

// SerializeRow is the inverse of ParseRow. Absent optional fields
// serialize as empty strings so the column positions never shift.
func SerializeRow(b model.Booking) []string {
	row := make([]string, model.ColumnCount)

	row[model.ColRefID] = b.RefID
	row[model.ColName] = b.Name
	row[model.ColPhone] = b.Phone
	row[model.ColEmail] = b.Email
	row[model.ColArea] = string(b.Area)
	row[model.ColDate] = b.Date
	row[model.ColTimeSlot] = b.TimeSlot
	row[model.ColAdults] = strconv.Itoa(b.Adults)
	row[model.ColChildren] = strconv.Itoa(b.Children)
	row[model.ColComments] = b.Comments
	row[model.ColTransactionID] = b.TransactionID
	row[model.ColUPIName] = b.UPIName
	row[model.ColScreenshotLink] = b.ScreenshotLink
	row[model.ColStatus] = string(b.Status)

	return row
}
