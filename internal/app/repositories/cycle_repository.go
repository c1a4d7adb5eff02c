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

// CycleRepository handles database operations for cycles
type CycleRepository struct {
	db *pgxpool.Pool
}

// NewCycleRepository creates a new cycle repository
func NewCycleRepository(db *pgxpool.Pool) *CycleRepository {
	return &CycleRepository{
		db: db,
	}
}

const cycleColumns = `id, course_year, name, code, norm_ref1, norm_ref2, law_id, cycle_type`

func scanCycle(row pgx.Row) (*models.Cycle, error) {
	var c models.Cycle
	err := row.Scan(
		&c.ID,
		&c.CourseYear,
		&c.Name,
		&c.Code,
		&c.NormRef1,
		&c.NormRef2,
		&c.LawID,
		&c.Type,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create creates a new cycle
func (r *CycleRepository) Create(ctx context.Context, cycle *models.Cycle) error {
	query := `
		INSERT INTO cycles (course_year, name, code, norm_ref1, norm_ref2, law_id, cycle_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		cycle.CourseYear, cycle.Name, cycle.Code, cycle.NormRef1,
		cycle.NormRef2, cycle.LawID, cycle.Type,
	).Scan(&cycle.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "cycles_code_year_unique") {
			return apperrors.ErrDuplicateCycle
		}
		return fmt.Errorf("error creating cycle: %w", err)
	}

	return nil
}

// GetByID retrieves a cycle by ID
func (r *CycleRepository) GetByID(ctx context.Context, id int64) (*models.Cycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM cycles WHERE id = $1`

	cycle, err := scanCycle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCycleNotFound
		}
		return nil, fmt.Errorf("error retrieving cycle: %w", err)
	}

	return cycle, nil
}

// GetAll retrieves all cycles ordered by code and course year
func (r *CycleRepository) GetAll(ctx context.Context) ([]*models.Cycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM cycles ORDER BY code, course_year`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cycles []*models.Cycle
	for rows.Next() {
		cycle, err := scanCycle(rows)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, cycle)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cycles, nil
}

// Update updates an existing cycle
func (r *CycleRepository) Update(ctx context.Context, cycle *models.Cycle) error {
	query := `
		UPDATE cycles
		SET course_year = $1, name = $2, code = $3, norm_ref1 = $4,
			norm_ref2 = $5, law_id = $6, cycle_type = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		cycle.CourseYear, cycle.Name, cycle.Code, cycle.NormRef1,
		cycle.NormRef2, cycle.LawID, cycle.Type, cycle.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "cycles_code_year_unique") {
			return apperrors.ErrDuplicateCycle
		}
		return fmt.Errorf("error updating cycle: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCycleNotFound
	}

	return nil
}

// Delete deletes a cycle by ID
func (r *CycleRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM cycles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting cycle: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCycleNotFound
	}

	return nil
}
