package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"launch_dashboard/internal/domain"
	"launch_dashboard/internal/domain/entity"
	"launch_dashboard/internal/domain/value"
	"launch_dashboard/pkg/contextx"
	"launch_dashboard/pkg/errcodes"
	"launch_dashboard/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Column names as exported by the launch dataset notebook.
const (
	ColumnFlightNumber           = "Flight Number"
	ColumnLaunchSite             = "Launch Site"
	ColumnPayloadMass            = "Payload Mass (kg)"
	ColumnBoosterVersion         = "Booster Version"
	ColumnBoosterVersionCategory = "Booster Version Category"
	ColumnClass                  = "class"
)

//nolint:gochecknoglobals
var requiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnBoosterVersionCategory,
	ColumnClass,
}

const utf8BOM = "\uFEFF"

type CSVLoader struct {
	path      string
	delimiter rune
}

type Option func(*CSVLoader)

func WithDelimiter(delimiter rune) Option {
	return func(l *CSVLoader) {
		l.delimiter = delimiter
	}
}

func NewCSVLoader(path string, opts ...Option) CSVLoader {
	l := CSVLoader{
		path:      path,
		delimiter: ',',
	}

	for _, opt := range opts {
		opt(&l)
	}

	return l
}

// Load reads the whole file into a table. Any problem fails the load; there
// is no partial result.
func (l CSVLoader) Load(ctx context.Context) (*entity.Table, error) {
	fh, err := os.Open(l.path)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.DatasetUnreadable, "open dataset "+l.path)
	}
	defer fh.Close()

	records, err := ReadRecords(fh, l.delimiter)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", l.path, err)
	}

	table, err := entity.NewTable(records)
	if err != nil {
		return nil, fmt.Errorf("entity.NewTable: %w", err)
	}

	logger(ctx).Info(
		"dataset loaded",
		slog.String(logx.FieldDatasetPath, l.path),
		slog.Int(logx.FieldDatasetRows, table.Len()),
	)

	return table, nil
}

// ReadRecords parses a delimited launch file. The header is matched by name,
// so extra columns (such as the unnamed pandas index) and column order do not
// matter.
func ReadRecords(r io.Reader, delimiter rune) ([]entity.LaunchRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.NewError(errcodes.DatasetEmpty, "dataset has no header")
	}
	if err != nil {
		return nil, domain.WrapError(err, errcodes.DatasetUnreadable, "read header")
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]entity.LaunchRecord, 0)

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.WrapError(err, errcodes.DatasetUnreadable, "read record")
		}

		line, _ := reader.FieldPos(0)

		record, err := columns.parse(row)
		if err != nil {
			return nil, domain.WrapError(err, errcodes.DatasetInvalidRecord, fmt.Sprintf("line %d", line))
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, domain.NewError(errcodes.DatasetEmpty, "dataset has a header but no records")
	}

	return records, nil
}

type columnIndex map[string]int

func indexColumns(header []string) (columnIndex, error) {
	columns := make(columnIndex, len(header))

	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, utf8BOM))
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}

	var missing []string

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, strconv.Quote(name))
		}
	}

	if len(missing) > 0 {
		return nil, domain.NewError(
			errcodes.DatasetSchemaMismatch,
			fmt.Sprintf("missing required columns %s (header: %s)", strings.Join(missing, ", "), strings.Join(header, ",")),
		)
	}

	return columns, nil
}

func (c columnIndex) parse(row []string) (entity.LaunchRecord, error) {
	field := func(name string) string {
		i, ok := c[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	payload, err := strconv.ParseFloat(field(ColumnPayloadMass), 64)
	if err != nil {
		return entity.LaunchRecord{}, fmt.Errorf("column %q: %w", ColumnPayloadMass, err)
	}
	if math.IsNaN(payload) || math.IsInf(payload, 0) || payload < 0 {
		return entity.LaunchRecord{}, fmt.Errorf("column %q: payload must be a non-negative number, got %q", ColumnPayloadMass, field(ColumnPayloadMass))
	}

	outcome, err := value.ParseOutcome(field(ColumnClass))
	if err != nil {
		return entity.LaunchRecord{}, fmt.Errorf("column %q: %w", ColumnClass, err)
	}

	site := field(ColumnLaunchSite)
	if site == "" {
		return entity.LaunchRecord{}, fmt.Errorf("column %q: empty launch site", ColumnLaunchSite)
	}

	flightNumber := 0
	if raw := field(ColumnFlightNumber); raw != "" {
		if flightNumber, err = strconv.Atoi(raw); err != nil {
			return entity.LaunchRecord{}, fmt.Errorf("column %q: %w", ColumnFlightNumber, err)
		}
	}

	return entity.LaunchRecord{
		FlightNumber:           flightNumber,
		LaunchSite:             site,
		PayloadMassKg:          payload,
		BoosterVersion:         field(ColumnBoosterVersion),
		BoosterVersionCategory: field(ColumnBoosterVersionCategory),
		Outcome:                outcome,
	}, nil
}
