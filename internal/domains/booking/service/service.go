package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"

	"popflea/config"
	"popflea/infras/otel"
	"popflea/infras/s3"
	"popflea/internal/domains/booking/capacity"
	"popflea/internal/domains/booking/model"
	"popflea/internal/domains/booking/model/dto"
	"popflea/internal/domains/booking/notifier"
	"popflea/internal/domains/booking/repository"
	"popflea/shared/constant"
	"popflea/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Booking runs the reservation lifecycle: it admits new bookings
// against slot capacity and moves existing ones through their allowed
// status transitions, persisting via the repository and notifying the
// guest as a side effect.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	List(ctx context.Context) (dto.GetBookingsResponse, error)
	Availability(ctx context.Context, date string) (dto.AvailabilityResponse, error)
	Transition(ctx context.Context, refID, status string) error
	Cancel(ctx context.Context, refID string) error
	ConfirmPayment(ctx context.Context, refID string) error
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	notifier notifier.Notifier
	uploader s3.S3
	cfg      *config.Config
	otel     otel.Otel

	limits capacity.Limits
	locks  *groupLocker
	refs   *refSequence
}

func New(repo repository.Booking, notif notifier.Notifier, uploader s3.S3, cfg *config.Config, otl otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		notifier: notif,
		uploader: uploader,
		cfg:      cfg,
		otel:     otl,
		limits: capacity.Limits{
			Indoor:  cfg.Event.IndoorLimit,
			Library: cfg.Event.LibraryLimit,
		},
		locks: newGroupLocker(),
		refs:  &refSequence{},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = model.ParseArea(req.Area); err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("area must be one of %s, %s", model.AreaIndoor, model.AreaLibrary)) // nolint:wrapcheck
	}

	if !slices.Contains(s.cfg.Event.Dates, req.Date) {
		return res, failure.BadRequestFromString(fmt.Sprintf("Please select a valid date: %s.", strings.Join(s.cfg.Event.Dates, ", "))) // nolint:wrapcheck
	}

	if !slices.Contains(s.cfg.Event.TimeSlots, req.TimeSlot) {
		return res, failure.BadRequestFromString(fmt.Sprintf("Please select a valid time slot: %s.", strings.Join(s.cfg.Event.TimeSlots, ", "))) // nolint:wrapcheck
	}

	screenshotLink, screenshotName, err := s.uploadScreenshot(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload payment screenshot")

		return res, fmt.Errorf("failed to upload payment screenshot: %w", err)
	}

	prospective := req.ToModel(constant.Empty, s.initialStatus(), screenshotLink)

	// Serialize the read-evaluate-append section per slot group so two
	// concurrent requests cannot both pass the capacity check.
	lock := s.locks.Get(prospective.GroupKey())
	lock.Lock()
	defer lock.Unlock()

	bookings, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings for capacity check")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	decision := capacity.Evaluate(bookings, prospective, s.limits)
	if !decision.Admitted {
		s.discardScreenshot(ctx, screenshotName)

		return res, failure.CapacityExceeded(decision.Remaining) // nolint:wrapcheck
	}

	booking := prospective
	booking.RefID = s.refs.Next(bookings)

	if err = s.repo.Append(ctx, booking); err != nil {
		log.Error().Err(err).Str("refId", booking.RefID).Msg("failed to persist booking")
		s.discardScreenshot(ctx, screenshotName)

		return res, fmt.Errorf("failed to persist booking: %w", err)
	}

	scope.AddEvent("Booking created with ref " + booking.RefID)

	go func() {
		c := context.WithoutCancel(ctx)

		var notifyErr error
		if s.cfg.Event.RequirePayment {
			notifyErr = s.notifier.BookingReceived(c, booking)
		} else {
			notifyErr = s.notifier.BookingConfirmed(c, booking)
		}

		if notifyErr != nil {
			log.Error().Err(notifyErr).Str("refId", booking.RefID).Msg("failed to send booking notification")
		}
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) Availability(ctx context.Context, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if date == "" {
		return res, failure.BadRequestFromString("Date is required") // nolint:wrapcheck
	}

	bookings, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings for availability")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	res.Availability = capacity.Availability(bookings, date, s.cfg.Event.TimeSlots, s.limits)

	return res, nil
}

func (s *serviceImpl) Transition(ctx context.Context, refID, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	target, err := model.ParseStatus(status)
	if err != nil {
		return failure.BadRequestFromString("invalid status: " + status) // nolint:wrapcheck
	}

	return s.transition(ctx, refID, target)
}

func (s *serviceImpl) Cancel(ctx context.Context, refID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, refID, model.StatusCancelled)
}

func (s *serviceImpl) ConfirmPayment(ctx context.Context, refID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, refID, model.StatusReserved)
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings for stats")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

// transition applies one step of the lifecycle graph. Re-applying the
// current status is a no-op success so an admin double-click never
// errors.
func (s *serviceImpl) transition(ctx context.Context, refID string, target model.Status) error {
	booking, err := s.repo.FindByRef(ctx, refID)
	if err != nil {
		log.Error().Err(err).Str("refId", refID).Msg("failed to look up booking")

		return fmt.Errorf("failed to look up booking: %w", err)
	}

	if booking.RefID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == target {
		log.Info().Str("refId", refID).Str("status", string(target)).Msg("booking already in target status")

		return nil
	}

	if !booking.Status.CanTransition(target) {
		return failure.BadRequestFromString(fmt.Sprintf("cannot change status from %s to %s", booking.Status, target)) // nolint:wrapcheck
	}

	if err = s.repo.UpdateStatus(ctx, booking.RowIndex, target); err != nil {
		log.Error().Err(err).Str("refId", refID).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	previous := booking.Status
	booking.Status = target

	go func() {
		c := context.WithoutCancel(ctx)

		var notifyErr error

		switch {
		case target == model.StatusCancelled:
			notifyErr = s.notifier.BookingCancelled(c, booking)
		case target == model.StatusReserved && previous == model.StatusPendingVerification:
			notifyErr = s.notifier.PaymentVerified(c, booking)
		}

		if notifyErr != nil {
			log.Error().Err(notifyErr).Str("refId", refID).Msg("failed to send status notification")
		}
	}()

	return nil
}

func (s *serviceImpl) initialStatus() model.Status {
	if s.cfg.Event.RequirePayment {
		return model.StatusPendingVerification
	}

	return model.StatusReserved
}

func (s *serviceImpl) uploadScreenshot(ctx context.Context, req dto.CreateBookingRequest) (string, string, error) {
	if req.Screenshot == nil {
		return constant.Empty, constant.Empty, nil
	}

	if !s.uploader.Enabled() {
		log.Info().Msg("screenshot attached but object storage is not configured, continuing without it")

		return constant.Empty, constant.Empty, nil
	}

	file, err := req.Screenshot.Open()
	if err != nil {
		return constant.Empty, constant.Empty, fmt.Errorf("failed to open screenshot: %w", err)
	}
	defer file.Close()

	fileName := uuid.NewString() + strings.ToLower(path.Ext(req.Screenshot.Filename))

	url, err := s.uploader.UploadFile(ctx, constant.ScreenshotDirectory, file, req.Screenshot, fileName)
	if err != nil {
		return constant.Empty, constant.Empty, err // nolint:wrapcheck
	}

	return url, fileName, nil
}

// discardScreenshot removes an uploaded object whose booking was never
// persisted.
func (s *serviceImpl) discardScreenshot(ctx context.Context, objectName string) {
	if objectName == constant.Empty {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.uploader.DeleteFile(c, constant.ScreenshotDirectory, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete orphaned screenshot")
		}
	}()
}
