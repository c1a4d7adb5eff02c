package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvidal/gestifp/internal/app/academic"
	"github.com/mvidal/gestifp/internal/app/models"
	"github.com/mvidal/gestifp/internal/pkg/apperrors"
	"github.com/mvidal/gestifp/internal/pkg/dberrors"
)

// EnrollmentRepository handles database operations for enrollments (matrículas)
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var e models.Enrollment
	var grade *string
	err := row.Scan(
		&e.ID,
		&e.RecordID,
		&e.ModuleID,
		&e.Status,
		&e.Completion,
		&grade,
	)
	if err != nil {
		return nil, err
	}
	if grade != nil {
		g := academic.Grade(*grade)
		e.Grade = &g
	}
	return &e, nil
}

// Create creates a new enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (record_id, module_id, status, completion, grade)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.RecordID, enrollment.ModuleID, enrollment.Status,
		enrollment.Completion, gradeParam(enrollment.Grade),
	).Scan(&enrollment.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_module_unique") {
			return apperrors.ErrDuplicateEnrollment
		}
		if dberrors.IsInvalidEnumError(err) {
			return apperrors.ErrInvalidGrade
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// CreateBatchTx inserts one NE enrollment per module inside an existing
// transaction. Used by the Extraordinaria provisioner.
func (r *EnrollmentRepository) CreateBatchTx(ctx context.Context, tx pgx.Tx, recordID int64, moduleIDs []int64) error {
	query := `
		INSERT INTO enrollments (record_id, module_id, status, completion, grade)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, moduleID := range moduleIDs {
		_, err := tx.Exec(ctx, query,
			recordID, moduleID, models.StatusMatricula, models.CompletionEnProceso,
			string(academic.GradeNE),
		)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "enrollments_module_unique") {
				return apperrors.ErrDuplicateEnrollment
			}
			return fmt.Errorf("error creating enrollment for module %d: %w", moduleID, err)
		}
	}

	return nil
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT id, record_id, module_id, status, completion, grade
		FROM enrollments
		WHERE id = $1
	`

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return enrollment, nil
}

// GetByRecordID retrieves all enrollments of a record with their modules
func (r *EnrollmentRepository) GetByRecordID(ctx context.Context, recordID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.record_id, e.module_id, e.status, e.completion, e.grade,
			m.id, m.cycle_id, m.name, m.code, m.course_year
		FROM enrollments e
		JOIN modules m ON m.id = e.module_id
		WHERE e.record_id = $1
		ORDER BY m.course_year, m.code
	`

	rows, err := r.db.Query(ctx, query, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var e models.Enrollment
		var m models.Module
		var grade *string
		if err := rows.Scan(
			&e.ID, &e.RecordID, &e.ModuleID, &e.Status, &e.Completion, &grade,
			&m.ID, &m.CycleID, &m.Name, &m.Code, &m.CourseYear,
		); err != nil {
			return nil, err
		}
		if grade != nil {
			g := academic.Grade(*grade)
			e.Grade = &g
		}
		e.Module = &m
		enrollments = append(enrollments, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// attemptRow joins an enrollment with the ordering attributes of its record.
const attemptQuery = `
	SELECT e.id, e.module_id, r.start_year, r.end_year, r.call_type, e.grade
	FROM enrollments e
	JOIN records r ON r.id = e.record_id
	WHERE r.student_id = $1`

// GetAttemptsByModule retrieves every attempt row for a student+module
// across all of the student's records. Rows come back unordered; the
// academic package owns the canonical ordering.
func (r *EnrollmentRepository) GetAttemptsByModule(ctx context.Context, studentID, moduleID int64) ([]academic.Attempt, error) {
	query := attemptQuery + ` AND e.module_id = $2`

	rows, err := r.db.Query(ctx, query, studentID, moduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts, _, err := collectAttempts(rows)
	return attempts, err
}

// GetAttemptsByCycle retrieves every attempt row for a student's modules
// within one cycle, grouped by module id.
func (r *EnrollmentRepository) GetAttemptsByCycle(ctx context.Context, studentID, cycleID int64) (map[int64][]academic.Attempt, error) {
	query := attemptQuery + ` AND r.cycle_id = $2`

	rows, err := r.db.Query(ctx, query, studentID, cycleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	_, byModule, err := collectAttempts(rows)
	return byModule, err
}

func collectAttempts(rows pgx.Rows) ([]academic.Attempt, map[int64][]academic.Attempt, error) {
	var all []academic.Attempt
	byModule := make(map[int64][]academic.Attempt)
	for rows.Next() {
		var a academic.Attempt
		var moduleID int64
		var call string
		var grade *string
		if err := rows.Scan(&a.EnrollmentID, &moduleID, &a.StartYear, &a.EndYear, &call, &grade); err != nil {
			return nil, nil, err
		}
		a.Call = call
		if grade != nil {
			g := academic.Grade(*grade)
			a.Grade = &g
		}
		all = append(all, a)
		byModule[moduleID] = append(byModule[moduleID], a)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return all, byModule, nil
}

// Update mutates an enrollment's status, completion and grade
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		UPDATE enrollments
		SET status = $1, completion = $2, grade = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		enrollment.Status, enrollment.Completion, gradeParam(enrollment.Grade), enrollment.ID,
	)
	if err != nil {
		if dberrors.IsInvalidEnumError(err) {
			return apperrors.ErrInvalidGrade
		}
		return fmt.Errorf("error updating enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// Delete deletes an enrollment by ID (a dropped module)
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// gradeParam converts the nullable grade for the driver.
func gradeParam(g *academic.Grade) *string {
	if g == nil {
		return nil
	}
	s := string(*g)
	return &s
}
