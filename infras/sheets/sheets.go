package sheets

//go:generate go run go.uber.org/mock/mockgen -source=./sheets.go -destination=./mocks/sheets_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"popflea/config"
	"popflea/infras/otel"
	"popflea/shared/constant"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2/google"
	oauthjwt "golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	valueInputOption = "USER_ENTERED"
)

// Sheets is the raw tabular-store boundary. It works in positional rows
// and A1 ranges only; mapping rows to bookings belongs to the booking
// repository.
type Sheets interface {
	FetchRows(ctx context.Context, rangeA1 string) ([][]string, error)
	AppendRow(ctx context.Context, rangeA1 string, row []string) error
	UpdateCell(ctx context.Context, cellA1 string, value string) error
	SheetName() string
}

type sheetsImpl struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
	otel          otel.Otel
}

func (svc *sheetsImpl) SheetName() string {
	return svc.sheetName
}

func (svc *sheetsImpl) FetchRows(ctx context.Context, rangeA1 string) (rows [][]string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".sheets.FetchRows")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelRangeAttributeKey, rangeA1)

	resp, err := svc.service.Spreadsheets.Values.Get(svc.spreadsheetID, rangeA1).Context(ctx).Do()
	if err != nil {
		log.Error().Err(err).Str("range", rangeA1).Msg("failed to fetch rows from sheet")

		return nil, fmt.Errorf("failed to fetch rows from sheet: %w", err)
	}

	rows = make([][]string, 0, len(resp.Values))

	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))

		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func (svc *sheetsImpl) AppendRow(ctx context.Context, rangeA1 string, row []string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".sheets.AppendRow")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelRangeAttributeKey, rangeA1)

	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{values},
	}

	_, err = svc.service.Spreadsheets.Values.
		Append(svc.spreadsheetID, rangeA1, valueRange).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Str("range", rangeA1).Msg("failed to append row to sheet")

		return fmt.Errorf("failed to append row to sheet: %w", err)
	}

	return nil
}

func (svc *sheetsImpl) UpdateCell(ctx context.Context, cellA1 string, value string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".sheets.UpdateCell")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelRangeAttributeKey, cellA1)

	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{{value}},
	}

	_, err = svc.service.Spreadsheets.Values.
		Update(svc.spreadsheetID, cellA1, valueRange).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Str("range", cellA1).Msg("failed to update cell in sheet")

		return fmt.Errorf("failed to update cell in sheet: %w", err)
	}

	return nil
}

func New(cfg *config.Config, otl otel.Otel) Sheets {
	ctx := context.Background()

	if cfg.Sheets.SpreadsheetID == "" || cfg.Sheets.ClientEmail == "" || cfg.Sheets.PrivateKey == "" {
		log.Fatal().Msg("Sheets credentials not configured")
	}

	// Private keys pasted into env files usually carry literal \n sequences.
	privateKey := strings.ReplaceAll(cfg.Sheets.PrivateKey, `\n`, "\n")

	jwtConfig := &oauthjwt.Config{
		Email:      cfg.Sheets.ClientEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Sheets service")
	}

	log.Info().
		Str("spreadsheet_id", cfg.Sheets.SpreadsheetID).
		Str("sheet", cfg.Sheets.SheetName).
		Msg("Connected to Google Sheets")

	return &sheetsImpl{
		service:       service,
		spreadsheetID: cfg.Sheets.SpreadsheetID,
		sheetName:     cfg.Sheets.SheetName,
		otel:          otl,
	}
}
