package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CycleRepository      *CycleRepository
	ModuleRepository     *ModuleRepository
	RecordRepository     *RecordRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		CycleRepository:      NewCycleRepository(db),
		ModuleRepository:     NewModuleRepository(db),
		RecordRepository:     NewRecordRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}
