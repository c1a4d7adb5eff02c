package services

import (
	"context"
	"errors"
	"strings"

	"github.com/mvidal/gestifp/internal/app/academic"
	"github.com/mvidal/gestifp/internal/app/models/dto"
	"github.com/mvidal/gestifp/internal/app/repositories"
	"github.com/mvidal/gestifp/internal/pkg/cache"
	"github.com/mvidal/gestifp/internal/pkg/helpers"
	"github.com/mvidal/gestifp/internal/pkg/logger"
)

// AcademicService computes attempt counts and certificate resolutions on
// top of the pure academic package. Attempt counts are always recomputed
// from the store; only certificate resolutions are cached.
type AcademicService struct {
	studentRepo    *repositories.StudentRepository
	cycleRepo      *repositories.CycleRepository
	moduleRepo     *repositories.ModuleRepository
	enrollmentRepo *repositories.EnrollmentRepository
	certCache      *cache.CertificateCache
}

// NewAcademicService creates a new academic service instance
func NewAcademicService(
	studentRepo *repositories.StudentRepository,
	cycleRepo *repositories.CycleRepository,
	moduleRepo *repositories.ModuleRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	certCache *cache.CertificateCache,
) *AcademicService {
	return &AcademicService{
		studentRepo:    studentRepo,
		cycleRepo:      cycleRepo,
		moduleRepo:     moduleRepo,
		enrollmentRepo: enrollmentRepo,
		certCache:      certCache,
	}
}

// CountAttempts returns the number of convocatorias the student has consumed
// for one module across their whole history.
func (s *AcademicService) CountAttempts(ctx context.Context, studentID, moduleID int64) (*dto.AttemptCountResponse, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	if _, err := s.moduleRepo.GetByID(ctx, moduleID); err != nil {
		return nil, err
	}

	attempts, err := s.enrollmentRepo.GetAttemptsByModule(ctx, studentID, moduleID)
	if err != nil {
		return nil, err
	}

	return &dto.AttemptCountResponse{
		StudentID: studentID,
		ModuleID:  moduleID,
		Attempts:  academic.CountAttempts(attempts),
	}, nil
}

// ResolveCertificate returns the cycle-scoped best-grade resolution for a
// student, ready for certificate generation. The resolution is served from
// cache when present; any cache failure degrades to recomputation.
func (s *AcademicService) ResolveCertificate(ctx context.Context, studentID, cycleID int64) (*dto.CertificateResponse, error) {
	var cached dto.CertificateResponse
	err := s.certCache.Get(ctx, studentID, cycleID, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Warn().Err(err).Int64("studentId", studentID).Msg("Certificate cache read failed")
	}

	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	cycle, err := s.cycleRepo.GetByID(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	modules, err := s.moduleRepo.GetByCycleID(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	refs := make([]academic.ModuleRef, 0, len(modules))
	for _, module := range modules {
		refs = append(refs, academic.ModuleRef{
			ID:   module.ID,
			Code: module.Code,
			Name: module.Name,
		})
	}

	attemptsByModule, err := s.enrollmentRepo.GetAttemptsByCycle(ctx, studentID, cycleID)
	if err != nil {
		return nil, err
	}

	best := academic.ResolveBest(refs, attemptsByModule)

	response := &dto.CertificateResponse{
		StudentID: studentID,
		CycleID:   cycleID,
		CycleName: cycle.Name,
		CycleCode: cycle.Code,
		Modules:   make([]dto.CertificateModule, 0, len(best)),
		Average:   academic.FormatAverage(best),
	}
	for _, b := range best {
		response.Modules = append(response.Modules,
			dto.NewCertificateModule(b, helpers.SchoolYearSpan(b.StartYear, b.EndYear)))
		if strings.HasPrefix(string(b.Grade), "TRAS") {
			response.HasTransfer = true
		}
	}

	if err := s.certCache.Set(ctx, studentID, cycleID, response); err != nil {
		logger.Warn().Err(err).Int64("studentId", studentID).Msg("Certificate cache write failed")
	}

	return response, nil
}
