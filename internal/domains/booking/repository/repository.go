package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"popflea/infras/otel"
	"popflea/infras/sheets"
	"popflea/internal/domains/booking/model"
	"popflea/shared/constant"

	"github.com/rs/zerolog/log"
)

// Booking is the typed boundary over the backing sheet. Raw columns
// never leave this package; everything above it works with
// model.Booking. A booking with an empty RefID means "not found".
type Booking interface {
	List(ctx context.Context) ([]model.Booking, error)
	FindByRef(ctx context.Context, refID string) (model.Booking, error)
	Append(ctx context.Context, booking model.Booking) error
	UpdateStatus(ctx context.Context, rowIndex int, status model.Status) error
}

type repositoryImpl struct {
	sheets sheets.Sheets
	otel   otel.Otel
}

func New(sheetsClient sheets.Sheets, otl otel.Otel) Booking {
	return &repositoryImpl{
		sheets: sheetsClient,
		otel:   otl,
	}
}

// dataRange covers the full column contract, A through N.
func (repo *repositoryImpl) dataRange() string {
	return fmt.Sprintf("%s!A:N", repo.sheets.SheetName())
}

// statusCell addresses the status column of one record, column N.
func (repo *repositoryImpl) statusCell(rowIndex int) string {
	return fmt.Sprintf("%s!N%d", repo.sheets.SheetName(), rowIndex)
}

func (repo *repositoryImpl) List(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.List", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := repo.sheets.FetchRows(ctx, repo.dataRange())
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings = make([]model.Booking, 0, len(rows))

	for i, row := range rows {
		// Sheet rows are 1-based.
		booking := ParseRow(row, i+1)
		if booking == nil {
			continue
		}

		bookings = append(bookings, *booking)
	}

	return bookings, nil
}

func (repo *repositoryImpl) FindByRef(ctx context.Context, refID string) (booking model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.FindByRef", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := repo.List(ctx)
	if err != nil {
		return booking, err
	}

	for i := range bookings {
		if bookings[i].RefID == refID {
			return bookings[i], nil
		}
	}

	return booking, nil
}

func (repo *repositoryImpl) Append(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Append", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.sheets.AppendRow(ctx, repo.dataRange(), SerializeRow(booking)); err != nil {
		log.Error().Err(err).Str("refId", booking.RefID).Msg("failed to append booking row")

		return fmt.Errorf("failed to append booking: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) UpdateStatus(ctx context.Context, rowIndex int, status model.Status) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.UpdateStatus", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.sheets.UpdateCell(ctx, repo.statusCell(rowIndex), string(status)); err != nil {
		log.Error().Err(err).Int("rowIndex", rowIndex).Msg("failed to update booking status cell")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	return nil
}
