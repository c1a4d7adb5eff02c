package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvidal/gestifp/internal/app/academic"
	"github.com/mvidal/gestifp/internal/app/models"
	"github.com/mvidal/gestifp/internal/app/models/dto"
	"github.com/mvidal/gestifp/internal/app/repositories"
	"github.com/mvidal/gestifp/internal/pkg/apperrors"
	"github.com/mvidal/gestifp/internal/pkg/cache"
	"github.com/mvidal/gestifp/internal/pkg/logger"
)

// StudentService handles student-related operations
type StudentService struct {
	studentRepo    *repositories.StudentRepository
	recordRepo     *repositories.RecordRepository
	cycleRepo      *repositories.CycleRepository
	enrollmentRepo *repositories.EnrollmentRepository
	certCache      *cache.CertificateCache
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	recordRepo *repositories.RecordRepository,
	cycleRepo *repositories.CycleRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	certCache *cache.CertificateCache,
) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		recordRepo:     recordRepo,
		cycleRepo:      cycleRepo,
		enrollmentRepo: enrollmentRepo,
		certCache:      certCache,
	}
}

// validateStudent validates student data before database operations
func (s *StudentService) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrStudentValidation)
	}

	if strings.TrimSpace(student.FirstName) == "" {
		return fmt.Errorf("%w: first name cannot be empty", apperrors.ErrStudentValidation)
	}

	if strings.TrimSpace(student.LastName1) == "" {
		return fmt.Errorf("%w: first surname cannot be empty", apperrors.ErrStudentValidation)
	}

	if strings.TrimSpace(student.LegalID) == "" {
		return fmt.Errorf("%w: legal id cannot be empty", apperrors.ErrStudentValidation)
	}

	return nil
}

// CreateStudent registers a new student
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return err
	}

	logger.Info().Int64("studentId", student.ID).Str("legalId", student.LegalID).Msg("Student registered")
	return nil
}

// GetStudentByID retrieves a student by id
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetStudents retrieves a page of students with the total count
func (s *StudentService) GetStudents(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	students, err := s.studentRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.studentRepo.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// UpdateStudent updates an existing student
func (s *StudentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}

	return s.studentRepo.Update(ctx, student)
}

// DeleteStudent removes a student. The store cascades to records and
// enrollments, so the cached certificate resolutions go too.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.certCache.InvalidateStudent(ctx, id); err != nil {
		logger.Warn().Err(err).Int64("studentId", id).Msg("Failed to invalidate certificate cache")
	}

	return nil
}

// GetExpediente returns the student's full nested record/enrollment tree.
// Each record carries its cycle, its enrollments with module details, and a
// status derived from the enrollment grades on the fly.
func (s *StudentService) GetExpediente(ctx context.Context, studentID int64) (*dto.ExpedienteResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	details := make([]*dto.RecordDetail, 0, len(records))
	for _, record := range records {
		cycle, err := s.cycleRepo.GetByID(ctx, record.CycleID)
		if err != nil {
			return nil, err
		}
		record.Cycle = cycle

		enrollments, err := s.enrollmentRepo.GetByRecordID(ctx, record.ID)
		if err != nil {
			return nil, err
		}
		record.Enrollments = enrollments

		grades := make([]*academic.Grade, 0, len(enrollments))
		for _, enrollment := range enrollments {
			grades = append(grades, enrollment.Grade)
		}

		details = append(details, &dto.RecordDetail{
			Record: record,
			Status: string(academic.DeriveRecordStatus(grades)),
		})
	}

	return &dto.ExpedienteResponse{
		Student: student,
		Records: details,
	}, nil
}
