package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"popflea/internal/domains/booking/model"
	"popflea/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		Name:          "Asha Verma",
		Phone:         "+919800000000",
		Email:         "asha@example.com",
		Area:          "Indoor",
		Date:          "2025-12-24",
		TimeSlot:      "18:00",
		Adults:        3,
		Children:      1,
		Comments:      "window seat please",
		TransactionID: "TXN12345",
		UPIName:       "asha.v",
	}

	booking := req.ToModel("042", model.StatusPendingVerification, "https://cdn.example.com/shot.png")

	assert.Equal(t, "042", booking.RefID)
	assert.Equal(t, model.AreaIndoor, booking.Area)
	assert.Equal(t, model.StatusPendingVerification, booking.Status)
	assert.Equal(t, "https://cdn.example.com/shot.png", booking.ScreenshotLink)
	assert.Equal(t, 3, booking.Adults)
	assert.Equal(t, 1, booking.Children)
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		RefID:    "042",
		Name:     "Asha Verma",
		Area:     model.AreaLibrary,
		Date:     "2025-12-24",
		TimeSlot: "18:00",
		Adults:   2,
		Status:   model.StatusReserved,
		RowIndex: 9,
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	assert.Equal(t, "042", res.RefID)
	assert.Equal(t, "Library (Smoking)", res.Area)
	assert.Equal(t, "Reserved", res.Status)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{RefID: "001", Status: model.StatusReserved},
		{RefID: "002", Status: model.StatusCancelled},
	}

	res := dto.GetBookingsResponse{}
	res.FromModels(models)

	if assert.Len(t, res.Bookings, 2) {
		assert.Equal(t, "001", res.Bookings[0].RefID)
		assert.Equal(t, "Cancelled", res.Bookings[1].Status)
	}
}

func TestStatsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{Status: model.StatusPendingVerification},
		{Status: model.StatusReserved},
		{Status: model.StatusReserved},
		{Status: model.StatusArrived},
		{Status: model.StatusCompleted},
		{Status: model.StatusCancelled},
	}

	res := dto.StatsResponse{}
	res.FromModels(models)

	assert.Equal(t, 6, res.Total)
	assert.Equal(t, 1, res.PendingVerification)
	assert.Equal(t, 2, res.Reserved)
	assert.Equal(t, 1, res.Arrived)
	assert.Equal(t, 1, res.Completed)
	assert.Equal(t, 1, res.Cancelled)
}

func TestStatsResponse_FromModels_Empty(t *testing.T) {
	res := dto.StatsResponse{}
	res.FromModels(nil)

	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 0, res.Reserved)
}
