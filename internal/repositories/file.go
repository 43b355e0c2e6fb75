package repositories

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/moneta-lab/go-finance-report/internal/common"
	"github.com/moneta-lab/go-finance-report/internal/common/log"
	"github.com/moneta-lab/go-finance-report/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// FileRepository loads transaction records from flat files. Malformed
// records are skipped, never fatal.
type FileRepository interface {
	Load(ctx context.Context, path string) (models.TransactionList, error)
	LoadJSON(ctx context.Context, path string) (models.TransactionList, error)
	LoadCSV(ctx context.Context, path string) (models.TransactionList, error)
	LoadXLSX(ctx context.Context, path string) (models.TransactionList, error)
}

type fileRepo struct{}

func NewFileRepository() FileRepository {
	return &fileRepo{}
}

// Load dispatches on the file extension.
func (r *fileRepo) Load(ctx context.Context, path string) (models.TransactionList, error) {
	if path == "" {
		return nil, common.ErrFilePathEmpty
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return r.LoadJSON(ctx, path)
	case ".csv":
		return r.LoadCSV(ctx, path)
	case ".xlsx":
		return r.LoadXLSX(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFileType, path)
	}
}

type (
	jsonCurrency struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}

	jsonOperationAmount struct {
		Amount   string       `json:"amount"`
		Currency jsonCurrency `json:"currency"`
	}

	jsonTransaction struct {
		ID              *int64              `json:"id"`
		State           string              `json:"state"`
		Date            string              `json:"date"`
		OperationAmount jsonOperationAmount `json:"operationAmount"`
		From            string              `json:"from"`
		To              string              `json:"to"`
		Description     string              `json:"description"`
	}
)

// LoadJSON reads the nested operationAmount record shape. A missing file
// or an undecodable/non-list payload yields an empty list, not an error;
// records without an id or a numeric amount are dropped.
func (r *fileRepo) LoadJSON(ctx context.Context, path string) (models.TransactionList, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn(ctx, "transactions file not found", log.String("path", path), log.Err(err))
		return models.TransactionList{}, nil
	}

	var records []jsonTransaction
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Warn(ctx, "transactions file is not a JSON list", log.String("path", path), log.Err(err))
		return models.TransactionList{}, nil
	}

	out := make(models.TransactionList, 0, len(records))
	for _, rec := range records {
		if rec.ID == nil {
			continue
		}

		amount, err := common.NewDecimalFromString(rec.OperationAmount.Amount)
		if err != nil || amount == nil {
			continue
		}

		date, err := parseRecordDate(rec.Date)
		if err != nil {
			continue
		}

		out = append(out, models.Transaction{
			ID:           *rec.ID,
			State:        rec.State,
			Date:         date,
			Amount:       *amount,
			CurrencyName: rec.OperationAmount.Currency.Name,
			CurrencyCode: rec.OperationAmount.Currency.Code,
			FromAccount:  rec.From,
			ToAccount:    rec.To,
			Description:  rec.Description,
		})
	}

	return out, nil
}

// LoadCSV reads a semicolon-delimited file with an
// id;state;date;amount;currency_name;currency_code;from;to;description
// header row.
func (r *fileRepo) LoadCSV(ctx context.Context, path string) (models.TransactionList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv file: %w", err)
	}
	if len(rows) == 0 {
		return models.TransactionList{}, nil
	}

	header := indexHeader(rows[0])

	out := make(models.TransactionList, 0, len(rows)-1)
	for _, row := range rows[1:] {
		tx, ok := rowToTransaction(header, row)
		if !ok {
			continue
		}
		out = append(out, tx)
	}

	return out, nil
}

// LoadXLSX reads the same columns from the first sheet of a spreadsheet.
func (r *fileRepo) LoadXLSX(ctx context.Context, path string) (models.TransactionList, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx file: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return models.TransactionList{}, nil
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx rows: %w", err)
	}
	if len(rows) == 0 {
		return models.TransactionList{}, nil
	}

	header := indexHeader(rows[0])

	out := make(models.TransactionList, 0, len(rows)-1)
	for _, row := range rows[1:] {
		tx, ok := rowToTransaction(header, row)
		if !ok {
			continue
		}
		out = append(out, tx)
	}

	return out, nil
}

func indexHeader(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return idx
}

func cell(header map[string]int, row []string, name string) string {
	i, ok := header[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func rowToTransaction(header map[string]int, row []string) (models.Transaction, bool) {
	id, err := decimal.NewFromString(cell(header, row, "id"))
	if err != nil {
		return models.Transaction{}, false
	}

	amount, err := decimal.NewFromString(cell(header, row, "amount"))
	if err != nil {
		return models.Transaction{}, false
	}

	date, err := parseRecordDate(cell(header, row, "date"))
	if err != nil {
		return models.Transaction{}, false
	}

	return models.Transaction{
		ID:           id.IntPart(),
		State:        cell(header, row, "state"),
		Date:         date,
		Amount:       amount,
		CurrencyName: cell(header, row, "currency_name"),
		CurrencyCode: cell(header, row, "currency_code"),
		FromAccount:  cell(header, row, "from"),
		ToAccount:    cell(header, row, "to"),
		Description:  cell(header, row, "description"),
	}, true
}

var recordDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	models.DateLayout,
}

func parseRecordDate(s string) (time.Time, error) {
	for _, layout := range recordDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", common.ErrInvalidFormatDate, s)
}
