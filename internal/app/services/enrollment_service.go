package services

import (
	"context"
	"fmt"

	"github.com/mvidal/gestifp/internal/app/academic"
	"github.com/mvidal/gestifp/internal/app/models"
	"github.com/mvidal/gestifp/internal/app/repositories"
	"github.com/mvidal/gestifp/internal/pkg/apperrors"
	"github.com/mvidal/gestifp/internal/pkg/cache"
	"github.com/mvidal/gestifp/internal/pkg/logger"
)

// EnrollmentService handles matrícula lifecycle and grade entry
type EnrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
	recordRepo     *repositories.RecordRepository
	moduleRepo     *repositories.ModuleRepository
	certCache      *cache.CertificateCache
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	enrollmentRepo *repositories.EnrollmentRepository,
	recordRepo *repositories.RecordRepository,
	moduleRepo *repositories.ModuleRepository,
	certCache *cache.CertificateCache,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		recordRepo:     recordRepo,
		moduleRepo:     moduleRepo,
		certCache:      certCache,
	}
}

// CreateEnrollment registers a record in a module
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	record, err := s.recordRepo.GetByID(ctx, enrollment.RecordID)
	if err != nil {
		return err
	}

	module, err := s.moduleRepo.GetByID(ctx, enrollment.ModuleID)
	if err != nil {
		return err
	}

	if module.CycleID != record.CycleID {
		return fmt.Errorf("%w: module does not belong to the record's cycle", apperrors.ErrValidationFailed)
	}

	if enrollment.Status == "" {
		enrollment.Status = models.StatusMatricula
	}
	if enrollment.Completion == "" {
		enrollment.Completion = models.CompletionEnProceso
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return err
	}

	s.invalidateStudent(ctx, record.StudentID)
	return nil
}

// GetEnrollmentByID retrieves an enrollment by id
func (s *EnrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	return s.enrollmentRepo.GetByID(ctx, id)
}

// UpdateEnrollment mutates an enrollment as grades are entered. gradeCode is
// validated against the taxonomy; an empty code clears the stored grade and
// puts the module back in progress.
func (s *EnrollmentService) UpdateEnrollment(ctx context.Context, id int64, status, completion, gradeCode string) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if status != "" {
		enrollment.Status = models.EnrollmentStatus(status)
	}
	if completion != "" {
		enrollment.Completion = models.CompletionStatus(completion)
	}

	if gradeCode == "" {
		enrollment.Grade = nil
	} else {
		grade, err := academic.ParseGrade(gradeCode)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidGrade, gradeCode)
		}
		enrollment.Grade = &grade
	}

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	record, err := s.recordRepo.GetByID(ctx, enrollment.RecordID)
	if err == nil {
		s.invalidateStudent(ctx, record.StudentID)
	}

	return enrollment, nil
}

// DeleteEnrollment removes an enrollment (module dropped)
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if record, err := s.recordRepo.GetByID(ctx, enrollment.RecordID); err == nil {
		s.invalidateStudent(ctx, record.StudentID)
	}

	return nil
}

func (s *EnrollmentService) invalidateStudent(ctx context.Context, studentID int64) {
	if err := s.certCache.InvalidateStudent(ctx, studentID); err != nil {
		logger.Warn().Err(err).Int64("studentId", studentID).Msg("Failed to invalidate certificate cache")
	}
}
