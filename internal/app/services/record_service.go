package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvidal/gestifp/internal/app/academic"
	"github.com/mvidal/gestifp/internal/app/models"
	"github.com/mvidal/gestifp/internal/app/repositories"
	"github.com/mvidal/gestifp/internal/db"
	"github.com/mvidal/gestifp/internal/pkg/apperrors"
	"github.com/mvidal/gestifp/internal/pkg/cache"
	"github.com/mvidal/gestifp/internal/pkg/logger"
)

// RecordService handles record lifecycle operations: creation, mutation,
// cascade deletion, and Extraordinaria provisioning.
type RecordService struct {
	pool           *pgxpool.Pool
	recordRepo     *repositories.RecordRepository
	enrollmentRepo *repositories.EnrollmentRepository
	studentRepo    *repositories.StudentRepository
	cycleRepo      *repositories.CycleRepository
	certCache      *cache.CertificateCache
}

// NewRecordService creates a new record service instance
func NewRecordService(
	pool *pgxpool.Pool,
	recordRepo *repositories.RecordRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	studentRepo *repositories.StudentRepository,
	cycleRepo *repositories.CycleRepository,
	certCache *cache.CertificateCache,
) *RecordService {
	return &RecordService{
		pool:           pool,
		recordRepo:     recordRepo,
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		cycleRepo:      cycleRepo,
		certCache:      certCache,
	}
}

// validateRecord validates record data before database operations
func (s *RecordService) validateRecord(record *models.Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", apperrors.ErrRecordValidation)
	}

	if record.StudentID <= 0 {
		return fmt.Errorf("%w: student ID must be positive", apperrors.ErrRecordValidation)
	}

	if record.CycleID <= 0 {
		return fmt.Errorf("%w: cycle ID must be positive", apperrors.ErrRecordValidation)
	}

	if record.EndYear <= record.StartYear {
		return fmt.Errorf("%w: end year must follow start year", apperrors.ErrRecordValidation)
	}

	if record.CallType != models.CallOrdinaria && record.CallType != models.CallExtraordinaria {
		return fmt.Errorf("%w: call type must be Ordinaria or Extraordinaria", apperrors.ErrRecordValidation)
	}

	return nil
}

// CreateRecord opens a new expediente for a student in a cycle
func (s *RecordService) CreateRecord(ctx context.Context, record *models.Record) error {
	if err := s.validateRecord(record); err != nil {
		return err
	}

	// Referenced entities must exist; surface 404 over a foreign key error
	if _, err := s.studentRepo.GetByID(ctx, record.StudentID); err != nil {
		return err
	}
	if _, err := s.cycleRepo.GetByID(ctx, record.CycleID); err != nil {
		return err
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return err
	}

	s.invalidateStudent(ctx, record.StudentID)

	logger.Info().
		Int64("recordId", record.ID).
		Int64("studentId", record.StudentID).
		Int("startYear", record.StartYear).
		Str("callType", string(record.CallType)).
		Msg("Record created")
	return nil
}

// GetRecordByID retrieves a record with its enrollments
func (s *RecordService) GetRecordByID(ctx context.Context, id int64) (*models.Record, error) {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.GetByRecordID(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Enrollments = enrollments

	return record, nil
}

// UpdateRecord updates the mutable attributes of a record
func (s *RecordService) UpdateRecord(ctx context.Context, record *models.Record) error {
	current, err := s.recordRepo.GetByID(ctx, record.ID)
	if err != nil {
		return err
	}

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return err
	}

	s.invalidateStudent(ctx, current.StudentID)
	return nil
}

// DeleteRecordComplete cascade-deletes a record: the target, every record of
// the same student+cycle chain with a strictly later year span, and the
// paired Extraordinaria when the target is Ordinaria. The whole set goes in
// one transaction; on any error nothing is deleted. Returns the deleted
// records.
func (s *RecordService) DeleteRecordComplete(ctx context.Context, recordID int64) ([]*models.Record, error) {
	target, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	chain, err := s.recordRepo.GetChain(ctx, target.StudentID, target.CycleID)
	if err != nil {
		return nil, err
	}

	chainRecords := make([]academic.ChainRecord, 0, len(chain))
	byID := make(map[int64]*models.Record, len(chain))
	for _, record := range chain {
		chainRecords = append(chainRecords, academic.ChainRecord{
			ID:        record.ID,
			StartYear: record.StartYear,
			EndYear:   record.EndYear,
			Call:      string(record.CallType),
		})
		byID[record.ID] = record
	}

	cascade, found := academic.CascadeSet(chainRecords, recordID)
	if !found {
		return nil, apperrors.ErrRecordNotFound
	}

	ids := make([]int64, 0, len(cascade))
	deleted := make([]*models.Record, 0, len(cascade))
	for _, member := range cascade {
		ids = append(ids, member.ID)
		deleted = append(deleted, byID[member.ID])
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return s.recordRepo.DeleteSetTx(ctx, tx, ids)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateStudent(ctx, target.StudentID)

	logger.Info().
		Int64("recordId", recordID).
		Int64("studentId", target.StudentID).
		Int("deletedCount", len(deleted)).
		Msg("Record chain cascade-deleted")
	return deleted, nil
}

// CreateExtraordinaria derives an Extraordinaria record from an Ordinaria
// base: same year span, shift and cycle, one NE enrollment per failing
// module. Record and enrollments are created in one transaction.
func (s *RecordService) CreateExtraordinaria(ctx context.Context, baseRecordID int64, failingModuleIDs []int64) (*models.Record, error) {
	base, err := s.recordRepo.FindOrdinariaBase(ctx, baseRecordID)
	if err != nil {
		return nil, err
	}

	if len(failingModuleIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one failing module is required", apperrors.ErrRecordValidation)
	}
	for _, moduleID := range failingModuleIDs {
		if moduleID <= 0 {
			return nil, fmt.Errorf("%w: module IDs must be positive", apperrors.ErrRecordValidation)
		}
	}

	derived := &models.Record{
		StudentID: base.StudentID,
		CycleID:   base.CycleID,
		StartYear: base.StartYear,
		EndYear:   base.EndYear,
		Shift:     base.Shift,
		CallType:  models.CallExtraordinaria,
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.recordRepo.CreateTx(ctx, tx, derived); err != nil {
			return err
		}
		return s.enrollmentRepo.CreateBatchTx(ctx, tx, derived.ID, failingModuleIDs)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateStudent(ctx, base.StudentID)

	logger.Info().
		Int64("baseRecordId", baseRecordID).
		Int64("recordId", derived.ID).
		Int("modules", len(failingModuleIDs)).
		Msg("Extraordinaria record provisioned")
	return derived, nil
}

// invalidateStudent drops the student's cached certificate resolutions.
// A redis failure only costs a recomputation, so it is logged and ignored.
func (s *RecordService) invalidateStudent(ctx context.Context, studentID int64) {
	if err := s.certCache.InvalidateStudent(ctx, studentID); err != nil {
		logger.Warn().Err(err).Int64("studentId", studentID).Msg("Failed to invalidate certificate cache")
	}
}
