package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvidal/gestifp/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	cycleController *controllers.CycleController,
	recordController *controllers.RecordController,
	enrollmentController *controllers.EnrollmentController,
	academicController *controllers.AcademicController,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.GET("/:id/expediente", studentController.GetExpediente)
		students.GET("/:id/modules/:moduleId/attempts", academicController.CountAttempts)
		students.GET("/:id/cycles/:cycleId/certificate", academicController.ResolveCertificate)
	}

	// Cycle and module routes
	cycles := v1.Group("/cycles")
	{
		cycles.POST("", cycleController.CreateCycle)
		cycles.GET("", cycleController.GetCycles)
		cycles.GET("/:id", cycleController.GetCycleByID)
		cycles.PUT("/:id", cycleController.UpdateCycle)
		cycles.DELETE("/:id", cycleController.DeleteCycle)
		cycles.GET("/:id/modules", cycleController.GetModules)
		cycles.POST("/:id/modules", cycleController.CreateModule)
	}

	modules := v1.Group("/modules")
	{
		modules.PUT("/:id", cycleController.UpdateModule)
		modules.DELETE("/:id", cycleController.DeleteModule)
	}

	// Record routes, including the confirmation-guarded cascade delete
	records := v1.Group("/records")
	{
		records.POST("", recordController.CreateRecord)
		records.GET("/:id", recordController.GetRecordByID)
		records.PUT("/:id", recordController.UpdateRecord)
		records.POST("/:id/delete/confirm", recordController.ConfirmDelete)
		records.DELETE("/:id/complete", recordController.DeleteRecordComplete)
		records.POST("/:id/extraordinaria", recordController.CreateExtraordinaria)
	}

	// Enrollment routes
	enrollments := v1.Group("/enrollments")
	{
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.PUT("/:id", enrollmentController.UpdateEnrollment)
		enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
	}
}
