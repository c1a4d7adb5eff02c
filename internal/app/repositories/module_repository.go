package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvidal/gestifp/internal/app/models"
	"github.com/mvidal/gestifp/internal/pkg/apperrors"
)

// ModuleRepository handles database operations for modules
type ModuleRepository struct {
	db *pgxpool.Pool
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(db *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{
		db: db,
	}
}

// Create creates a new module
func (r *ModuleRepository) Create(ctx context.Context, module *models.Module) error {
	query := `
		INSERT INTO modules (cycle_id, name, code, course_year)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		module.CycleID, module.Name, module.Code, module.CourseYear,
	).Scan(&module.ID)
	if err != nil {
		return fmt.Errorf("error creating module: %w", err)
	}

	return nil
}

// GetByID retrieves a module by ID
func (r *ModuleRepository) GetByID(ctx context.Context, id int64) (*models.Module, error) {
	query := `
		SELECT id, cycle_id, name, code, course_year
		FROM modules
		WHERE id = $1
	`

	var module models.Module
	err := r.db.QueryRow(ctx, query, id).Scan(
		&module.ID,
		&module.CycleID,
		&module.Name,
		&module.Code,
		&module.CourseYear,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrModuleNotFound
		}
		return nil, fmt.Errorf("error retrieving module: %w", err)
	}

	return &module, nil
}

// GetByCycleID retrieves all modules of a cycle ordered by course year and code
func (r *ModuleRepository) GetByCycleID(ctx context.Context, cycleID int64) ([]*models.Module, error) {
	query := `
		SELECT id, cycle_id, name, code, course_year
		FROM modules
		WHERE cycle_id = $1
		ORDER BY course_year, code
	`

	rows, err := r.db.Query(ctx, query, cycleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []*models.Module
	for rows.Next() {
		var module models.Module
		if err := rows.Scan(
			&module.ID,
			&module.CycleID,
			&module.Name,
			&module.Code,
			&module.CourseYear,
		); err != nil {
			return nil, err
		}
		modules = append(modules, &module)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return modules, nil
}

// Update updates an existing module
func (r *ModuleRepository) Update(ctx context.Context, module *models.Module) error {
	query := `
		UPDATE modules
		SET name = $1, code = $2, course_year = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		module.Name, module.Code, module.CourseYear, module.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating module: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrModuleNotFound
	}

	return nil
}

// Delete deletes a module by ID
func (r *ModuleRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM modules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting module: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrModuleNotFound
	}

	return nil
}
