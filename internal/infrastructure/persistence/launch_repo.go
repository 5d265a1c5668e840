package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"launch_dashboard/internal/domain"
	"launch_dashboard/internal/domain/entity"
	"launch_dashboard/pkg/contextx"
	"launch_dashboard/pkg/errcodes"
	"launch_dashboard/pkg/logx"
	"launch_dashboard/pkg/lox"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// LaunchRecordRepository reads the dataset from Postgres. It is an
// alternative to the CSV file; the dashboard only ever reads it once at
// startup.
type LaunchRecordRepository struct {
	db *sqlx.DB
}

func NewLaunchRecordRepository(db *sqlx.DB) *LaunchRecordRepository {
	return &LaunchRecordRepository{db: db}
}

// List returns every record in insertion order.
func (r *LaunchRecordRepository) List(ctx context.Context) ([]entity.LaunchRecord, error) {
	query := `
		SELECT id, flight_number, launch_site, payload_mass_kg,
		       booster_version, booster_version_category, class
		FROM launch_records
		ORDER BY id`

	var rows []launchRecordSchema
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, domain.WrapError(err, errcodes.DatasetUnreadable, "failed to list launch records")
	}

	return lox.Map(rows, launchRecordSchema.toDomain), nil
}

// Load builds the immutable table from List.
func (r *LaunchRecordRepository) Load(ctx context.Context) (*entity.Table, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, domain.NewError(errcodes.DatasetEmpty, "launch_records is empty")
	}

	table, err := entity.NewTable(records)
	if err != nil {
		return nil, fmt.Errorf("entity.NewTable: %w", err)
	}

	logger(ctx).Info(
		"dataset loaded",
		slog.String(logx.FieldDatasetSource, "postgres"),
		slog.Int(logx.FieldDatasetRows, table.Len()),
	)

	return table, nil
}

// Insert seeds the table, e.g. from a CSV file. Rows are written in one
// transaction.
func (r *LaunchRecordRepository) Insert(ctx context.Context, records []entity.LaunchRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	query := `
		INSERT INTO launch_records (
			flight_number, launch_site, payload_mass_kg,
			booster_version, booster_version_category, class
		) VALUES (
			:flight_number, :launch_site, :payload_mass_kg,
			:booster_version, :booster_version_category, :class
		)`

	for _, record := range records {
		if _, err := tx.NamedExecContext(ctx, query, fromLaunchRecord(record)); err != nil {
			_ = tx.Rollback()
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert launch record")
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}
