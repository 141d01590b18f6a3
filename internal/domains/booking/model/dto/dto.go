package dto

import (
	"mime/multipart"
	"popflea/internal/domains/booking/capacity"
	"popflea/internal/domains/booking/model"
)

type CreateBookingRequest struct {
	Name          string `json:"name"          validate:"required,max=100"`
	Phone         string `json:"phone"         validate:"required,max=20"`
	Email         string `json:"email"         validate:"required,email,max=100"`
	Area          string `json:"area"          validate:"required"`
	Date          string `json:"date"          validate:"required"`
	TimeSlot      string `json:"timeSlot"      validate:"required"`
	Adults        int    `json:"adults"        validate:"required,gte=1,lte=20"`
	Children      int    `json:"children"      validate:"gte=0,lte=20"`
	Comments      string `json:"comments"      validate:"omitempty,max=500"`
	TransactionID string `json:"transactionId" validate:"omitempty,max=100"`
	UPIName       string `json:"upiName"       validate:"omitempty,max=100"`

	Screenshot *multipart.FileHeader `json:"-" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
}

func (c *CreateBookingRequest) ToModel(refID string, status model.Status, screenshotLink string) model.Booking {
	return model.Booking{
		RefID:          refID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Area:           model.Area(c.Area),
		Date:           c.Date,
		TimeSlot:       c.TimeSlot,
		Adults:         c.Adults,
		Children:       c.Children,
		Comments:       c.Comments,
		TransactionID:  c.TransactionID,
		UPIName:        c.UPIName,
		ScreenshotLink: screenshotLink,
		Status:         status,
	}
}

type BookingResponse struct {
	RefID          string `json:"refId"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Area           string `json:"area"`
	Date           string `json:"date"`
	TimeSlot       string `json:"timeSlot"`
	Adults         int    `json:"adults"`
	Children       int    `json:"children"`
	Comments       string `json:"comments"`
	TransactionID  string `json:"transactionId"`
	UPIName        string `json:"upiName"`
	ScreenshotLink string `json:"screenshotLink"`
	Status         string `json:"status"`
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.RefID = mod.RefID
	r.Name = mod.Name
	r.Phone = mod.Phone
	r.Email = mod.Email
	r.Area = string(mod.Area)
	r.Date = mod.Date
	r.TimeSlot = mod.TimeSlot
	r.Adults = mod.Adults
	r.Children = mod.Children
	r.Comments = mod.Comments
	r.TransactionID = mod.TransactionID
	r.UPIName = mod.UPIName
	r.ScreenshotLink = mod.ScreenshotLink
	r.Status = string(mod.Status)
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type CreateBookingResponse struct {
	Message string          `json:"message"`
	Data    BookingResponse `json:"data"`
}

type UpdateStatusRequest struct {
	BookingRef string `json:"bookingRef" validate:"required"`
	Status     string `json:"status"     validate:"required"`
}

type CancelBookingRequest struct {
	BookingRef string `json:"bookingRef" validate:"required"`
}

type ConfirmPaymentRequest struct {
	BookingRef string `json:"bookingRef" validate:"required"`
}

type AvailabilityResponse struct {
	Availability map[string]map[string]capacity.AreaAvailability `json:"availability"`
}

type StatsResponse struct {
	Total               int `json:"total"`
	PendingVerification int `json:"pendingVerification"`
	Reserved            int `json:"reserved"`
	Arrived             int `json:"arrived"`
	Completed           int `json:"completed"`
	Cancelled           int `json:"cancelled"`
}

func (r *StatsResponse) FromModels(models []model.Booking) {
	r.Total = len(models)

	for _, mod := range models {
		switch mod.Status {
		case model.StatusPendingVerification:
			r.PendingVerification++
		case model.StatusReserved:
			r.Reserved++
		case model.StatusArrived:
			r.Arrived++
		case model.StatusCompleted:
			r.Completed++
		case model.StatusCancelled:
			r.Cancelled++
		}
	}
}
