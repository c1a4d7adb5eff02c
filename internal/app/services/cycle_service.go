package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvidal/gestifp/internal/app/models"
	"github.com/mvidal/gestifp/internal/app/repositories"
	"github.com/mvidal/gestifp/internal/pkg/apperrors"
)

// CycleService handles cycle and module reference data
type CycleService struct {
	cycleRepo  *repositories.CycleRepository
	moduleRepo *repositories.ModuleRepository
}

// NewCycleService creates a new cycle service instance
func NewCycleService(cycleRepo *repositories.CycleRepository, moduleRepo *repositories.ModuleRepository) *CycleService {
	return &CycleService{
		cycleRepo:  cycleRepo,
		moduleRepo: moduleRepo,
	}
}

// validateCycle validates cycle data before database operations
func (s *CycleService) validateCycle(cycle *models.Cycle) error {
	if cycle == nil {
		return fmt.Errorf("%w: cycle is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(cycle.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(cycle.Code) == "" {
		return fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}

	if cycle.Type != models.CycleGM && cycle.Type != models.CycleGS {
		return fmt.Errorf("%w: cycle type must be GM or GS", apperrors.ErrValidationFailed)
	}

	if cycle.CourseYear < 1 {
		return fmt.Errorf("%w: course year must be positive", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateCycle creates a new cycle
func (s *CycleService) CreateCycle(ctx context.Context, cycle *models.Cycle) error {
	if err := s.validateCycle(cycle); err != nil {
		return err
	}

	return s.cycleRepo.Create(ctx, cycle)
}

// GetCycleByID retrieves a cycle with its modules
func (s *CycleService) GetCycleByID(ctx context.Context, id int64) (*models.Cycle, error) {
	cycle, err := s.cycleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	modules, err := s.moduleRepo.GetByCycleID(ctx, id)
	if err != nil {
		return nil, err
	}
	cycle.Modules = modules

	return cycle, nil
}

// GetCycles retrieves all cycles
func (s *CycleService) GetCycles(ctx context.Context) ([]*models.Cycle, error) {
	return s.cycleRepo.GetAll(ctx)
}

// UpdateCycle updates an existing cycle
func (s *CycleService) UpdateCycle(ctx context.Context, cycle *models.Cycle) error {
	if err := s.validateCycle(cycle); err != nil {
		return err
	}

	return s.cycleRepo.Update(ctx, cycle)
}

// DeleteCycle removes a cycle
func (s *CycleService) DeleteCycle(ctx context.Context, id int64) error {
	return s.cycleRepo.Delete(ctx, id)
}

// GetModules retrieves the modules of a cycle
func (s *CycleService) GetModules(ctx context.Context, cycleID int64) ([]*models.Module, error) {
	// Surface a 404 for an unknown cycle rather than an empty list
	if _, err := s.cycleRepo.GetByID(ctx, cycleID); err != nil {
		return nil, err
	}

	return s.moduleRepo.GetByCycleID(ctx, cycleID)
}

// CreateModule adds a module to a cycle
func (s *CycleService) CreateModule(ctx context.Context, module *models.Module) error {
	if strings.TrimSpace(module.Name) == "" || strings.TrimSpace(module.Code) == "" {
		return fmt.Errorf("%w: module name and code are required", apperrors.ErrValidationFailed)
	}

	if _, err := s.cycleRepo.GetByID(ctx, module.CycleID); err != nil {
		return err
	}

	return s.moduleRepo.Create(ctx, module)
}

// UpdateModule updates an existing module
func (s *CycleService) UpdateModule(ctx context.Context, module *models.Module) error {
	if strings.TrimSpace(module.Name) == "" || strings.TrimSpace(module.Code) == "" {
		return fmt.Errorf("%w: module name and code are required", apperrors.ErrValidationFailed)
	}

	return s.moduleRepo.Update(ctx, module)
}

// DeleteModule removes a module
func (s *CycleService) DeleteModule(ctx context.Context, id int64) error {
	return s.moduleRepo.Delete(ctx, id)
}
