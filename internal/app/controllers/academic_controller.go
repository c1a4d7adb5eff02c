package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvidal/gestifp/internal/app/models/dto"
	"github.com/mvidal/gestifp/internal/app/services"
	"github.com/mvidal/gestifp/internal/middleware"
)

// AcademicController exposes attempt counts and certificate resolutions
type AcademicController struct {
	academicService *services.AcademicService
}

// NewAcademicController creates a new AcademicController
func NewAcademicController(academicService *services.AcademicService) *AcademicController {
	return &AcademicController{
		academicService: academicService,
	}
}

// CountAttempts reports consumed convocatorias for one student+module
// @Summary Count module attempts
// @Description Counts the convocatorias a student has consumed for a module across their whole history
// @Tags academic
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param moduleId path int true "Module ID"
// @Success 200 {object} dto.APIResponse{data=dto.AttemptCountResponse} "Attempt count computed"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Student or module not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/modules/{moduleId}/attempts [get]
func (c *AcademicController) CountAttempts(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id", "Invalid student ID")
	if !ok {
		return
	}

	moduleID, ok := parseIDParam(ctx, "moduleId", "Invalid module ID")
	if !ok {
		return
	}

	count, err := c.academicService.CountAttempts(ctx, studentID, moduleID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      count,
		Timestamp: time.Now(),
	})
}

// ResolveCertificate returns the cycle-scoped best-grade resolution
// @Summary Resolve certificate grades
// @Description Resolves the best grade per module of a cycle for a student, with the certificate average
// @Tags academic
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param cycleId path int true "Cycle ID"
// @Success 200 {object} dto.APIResponse{data=dto.CertificateResponse} "Certificate resolution computed"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Student or cycle not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/cycles/{cycleId}/certificate [get]
func (c *AcademicController) ResolveCertificate(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id", "Invalid student ID")
	if !ok {
		return
	}

	cycleID, ok := parseIDParam(ctx, "cycleId", "Invalid cycle ID")
	if !ok {
		return
	}

	certificate, err := c.academicService.ResolveCertificate(ctx, studentID, cycleID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      certificate,
		Timestamp: time.Now(),
	})
}
