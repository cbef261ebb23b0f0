package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/cropstats/internal/config"
)

// Repository defines the persistence operations supported by the Google Sheets adapter.
type Repository interface {
	ReadRange(ctx context.Context, sheetRange string) ([][]interface{}, error)
	UpdateRange(ctx context.Context, sheetRange string, values [][]interface{}) error
	ClearRange(ctx context.Context, sheetRange string) error
}

// GoogleSheetRepository implements the Repository interface using the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// ReadRange fetches a rectangular data range from the spreadsheet. Cells come
// back unformatted so numbers keep full precision.
func (r *GoogleSheetRepository) ReadRange(ctx context.Context, sheetRange string) ([][]interface{}, error) {
	if sheetRange == "" {
		return nil, fmt.Errorf("sheetRange must not be empty")
	}

	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, sheetRange).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", sheetRange, err)
	}

	return resp.Values, nil
}

// UpdateRange overwrites the supplied range starting at its top-left cell.
func (r *GoogleSheetRepository) UpdateRange(ctx context.Context, sheetRange string, values [][]interface{}) error {
	if sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}

	payload := &sheetsapi.ValueRange{Values: values}

	call := r.service.Spreadsheets.Values.Update(r.spreadsheetID, sheetRange, payload).
		ValueInputOption("RAW").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("update range %s: %w", sheetRange, err)
	}

	r.logger.Debug("range updated", zap.String("range", sheetRange), zap.Int("rows", len(values)))
	return nil
}

// ClearRange removes every value in the supplied range.
func (r *GoogleSheetRepository) ClearRange(ctx context.Context, sheetRange string) error {
	if sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}

	call := r.service.Spreadsheets.Values.Clear(r.spreadsheetID, sheetRange, &sheetsapi.ClearValuesRequest{}).Context(ctx)
	if _, err := call.Do(); err != nil {
		return fmt.Errorf("clear range %s: %w", sheetRange, err)
	}
	return nil
}
