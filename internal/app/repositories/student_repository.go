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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, first_name, last_name1, last_name2, sex, legal_id, legal_id_type,
		birth_date, phone, observations, meets_admission_requirement`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.FirstName,
		&s.LastName1,
		&s.LastName2,
		&s.Sex,
		&s.LegalID,
		&s.LegalIDType,
		&s.BirthDate,
		&s.Phone,
		&s.Observations,
		&s.MeetsAdmissionReq,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (first_name, last_name1, last_name2, sex, legal_id, legal_id_type,
			birth_date, phone, observations, meets_admission_requirement)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.FirstName, student.LastName1, student.LastName2, student.Sex,
		student.LegalID, student.LegalIDType, student.BirthDate, student.Phone,
		student.Observations, student.MeetsAdmissionReq,
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_legal_id_unique") {
			return apperrors.ErrDuplicateLegalID
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves a page of students ordered by surname
func (r *StudentRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		ORDER BY last_name1, last_name2, first_name
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// CountAll returns the total number of students
func (r *StudentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// Update updates an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name1 = $2, last_name2 = $3, sex = $4,
			legal_id = $5, legal_id_type = $6, birth_date = $7, phone = $8,
			observations = $9, meets_admission_requirement = $10
		WHERE id = $11
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName, student.LastName1, student.LastName2, student.Sex,
		student.LegalID, student.LegalIDType, student.BirthDate, student.Phone,
		student.Observations, student.MeetsAdmissionReq, student.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_legal_id_unique") {
			return apperrors.ErrDuplicateLegalID
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
