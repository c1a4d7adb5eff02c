package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvidal/gestifp/internal/app/models"
	"github.com/mvidal/gestifp/internal/pkg/apperrors"
	"github.com/mvidal/gestifp/internal/pkg/dberrors"
)

// RecordRepository handles database operations for records (expedientes)
type RecordRepository struct {
	db *pgxpool.Pool
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{
		db: db,
	}
}

const recordColumns = `id, student_id, cycle_id, start_year, end_year, shift, call_type,
		title_paid_at, via_transfer, withdrawn`

func scanRecord(row pgx.Row) (*models.Record, error) {
	var rec models.Record
	err := row.Scan(
		&rec.ID,
		&rec.StudentID,
		&rec.CycleID,
		&rec.StartYear,
		&rec.EndYear,
		&rec.Shift,
		&rec.CallType,
		&rec.TitlePaidAt,
		&rec.ViaTransfer,
		&rec.Withdrawn,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create creates a new record. The records_call_unique constraint rejects a
// second record for the same (student, cycle, year pair, call type).
func (r *RecordRepository) Create(ctx context.Context, record *models.Record) error {
	query := `
		INSERT INTO records (student_id, cycle_id, start_year, end_year, shift, call_type,
			title_paid_at, via_transfer, withdrawn)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		record.StudentID, record.CycleID, record.StartYear, record.EndYear,
		record.Shift, record.CallType, record.TitlePaidAt, record.ViaTransfer,
		record.Withdrawn,
	).Scan(&record.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "records_call_unique") {
			return apperrors.ErrDuplicateRecordCall
		}
		return fmt.Errorf("error creating record: %w", err)
	}

	return nil
}

// CreateTx creates a record inside an existing transaction. Used by the
// Extraordinaria provisioner so the record and its NE enrollments commit
// atomically.
func (r *RecordRepository) CreateTx(ctx context.Context, tx pgx.Tx, record *models.Record) error {
	query := `
		INSERT INTO records (student_id, cycle_id, start_year, end_year, shift, call_type,
			title_paid_at, via_transfer, withdrawn)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		record.StudentID, record.CycleID, record.StartYear, record.EndYear,
		record.Shift, record.CallType, record.TitlePaidAt, record.ViaTransfer,
		record.Withdrawn,
	).Scan(&record.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "records_call_unique") {
			return apperrors.ErrDuplicateRecordCall
		}
		return fmt.Errorf("error creating record: %w", err)
	}

	return nil
}

// GetByID retrieves a record by ID
func (r *RecordRepository) GetByID(ctx context.Context, id int64) (*models.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id = $1`

	record, err := scanRecord(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("error retrieving record: %w", err)
	}

	return record, nil
}

// GetByStudentID retrieves every record of a student in chain order
func (r *RecordRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM records
		WHERE student_id = $1
		ORDER BY start_year, end_year,
			CASE call_type WHEN 'Ordinaria' THEN 0 ELSE 1 END
	`

	return r.queryRecords(ctx, query, studentID)
}

// GetChain retrieves the student+cycle record chain in temporal order.
// The chain is the unit of consistency for cascade deletion.
func (r *RecordRepository) GetChain(ctx context.Context, studentID, cycleID int64) ([]*models.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM records
		WHERE student_id = $1 AND cycle_id = $2
		ORDER BY start_year, end_year,
			CASE call_type WHEN 'Ordinaria' THEN 0 ELSE 1 END
	`

	return r.queryRecords(ctx, query, studentID, cycleID)
}

// FindOrdinariaBase looks up the Ordinaria record matching an id owned by a
// student, for deriving its Extraordinaria.
func (r *RecordRepository) FindOrdinariaBase(ctx context.Context, recordID int64) (*models.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id = $1 AND call_type = 'Ordinaria'`

	record, err := scanRecord(r.db.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMissingBaseRecord
		}
		return nil, fmt.Errorf("error retrieving base record: %w", err)
	}

	return record, nil
}

// Update updates the mutable attributes of a record
func (r *RecordRepository) Update(ctx context.Context, record *models.Record) error {
	query := `
		UPDATE records
		SET shift = $1, title_paid_at = $2, via_transfer = $3, withdrawn = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		record.Shift, record.TitlePaidAt, record.ViaTransfer, record.Withdrawn, record.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRecordNotFound
	}

	return nil
}

// DeleteSetTx deletes the given records and their enrollments inside an
// existing transaction. Enrollments go first so the foreign keys never
// dangle; either everything in the set is deleted or nothing is.
func (r *RecordRepository) DeleteSetTx(ctx context.Context, tx pgx.Tx, recordIDs []int64) error {
	if len(recordIDs) == 0 {
		return nil
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM enrollments WHERE record_id = ANY($1)`, recordIDs); err != nil {
		return fmt.Errorf("error deleting enrollments in cascade: %w", err)
	}

	cmdTag, err := tx.Exec(ctx,
		`DELETE FROM records WHERE id = ANY($1)`, recordIDs)
	if err != nil {
		return fmt.Errorf("error deleting records in cascade: %w", err)
	}

	if cmdTag.RowsAffected() != int64(len(recordIDs)) {
		return fmt.Errorf("cascade expected %d records, deleted %d", len(recordIDs), cmdTag.RowsAffected())
	}

	return nil
}

func (r *RecordRepository) queryRecords(ctx context.Context, query string, args ...interface{}) ([]*models.Record, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
