package services

// Services defined in this package:
// - StudentService: student registry plus the nested expediente tree
// - CycleService: cycle and module reference data
// - RecordService: record lifecycle, cascade delete, Extraordinaria provisioning
// - EnrollmentService: matrícula lifecycle and grade entry
// - AcademicService: attempt counting and certificate resolution
