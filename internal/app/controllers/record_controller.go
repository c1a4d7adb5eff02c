package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvidal/gestifp/internal/app/models/dto"
	"github.com/mvidal/gestifp/internal/app/services"
	"github.com/mvidal/gestifp/internal/middleware"
	"github.com/mvidal/gestifp/internal/pkg/apperrors"
	"github.com/mvidal/gestifp/internal/pkg/confirm"
)

// RecordController handles record lifecycle operations, including the
// two-stage confirmation flow guarding cascade deletes.
type RecordController struct {
	recordService *services.RecordService
	confirmations *confirm.Manager
}

// NewRecordController creates a new RecordController
func NewRecordController(recordService *services.RecordService, confirmations *confirm.Manager) *RecordController {
	return &RecordController{
		recordService: recordService,
		confirmations: confirmations,
	}
}

// CreateRecord opens a new expediente
// @Summary Create a new record
// @Description Opens an expediente for a student in a cycle and school year
// @Tags records
// @Accept json
// @Produce json
// @Param request body dto.CreateRecordRequest true "Record information"
// @Success 201 {object} dto.APIResponse{data=models.Record} "Record created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or cycle not found"
// @Failure 409 {object} dto.ErrorResponse "Record already exists for this year and call"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /records [post]
func (c *RecordController) CreateRecord(ctx *gin.Context) {
	var req dto.CreateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid record data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record := req.ToModel()
	if err := c.recordService.CreateRecord(ctx, record); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// GetRecordByID retrieves a record with its enrollments
// @Summary Get record by ID
// @Description Retrieves a record and its enrollments
// @Tags records
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse{data=models.Record} "Record retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid record ID"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /records/{id} [get]
func (c *RecordController) GetRecordByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid record ID")
	if !ok {
		return
	}

	record, err := c.recordService.GetRecordByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// UpdateRecord updates the mutable attributes of a record
// @Summary Update record
// @Description Updates a record's shift, payment date, transfer and withdrawal flags
// @Tags records
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param request body dto.UpdateRecordRequest true "Record information"
// @Success 200 {object} dto.APIResponse{data=models.Record} "Record updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /records/{id} [put]
func (c *RecordController) UpdateRecord(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid record ID")
	if !ok {
		return
	}

	var req dto.UpdateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid record data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record, err := c.recordService.GetRecordByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	record.Shift = req.Shift
	record.TitlePaidAt = req.TitlePaidAt
	record.ViaTransfer = req.ViaTransfer
	record.Withdrawn = req.Withdrawn

	if err := c.recordService.UpdateRecord(ctx, record); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// ConfirmDelete advances the delete confirmation stage for a record
// @Summary Advance delete confirmation
// @Description Advances the two-stage confirmation required before a cascade delete. Each stage expires back to idle after the configured window.
// @Tags records
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteConfirmationResponse} "Confirmation stage advanced"
// @Failure 400 {object} dto.ErrorResponse "Invalid record ID"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /records/{id}/delete/confirm [post]
func (c *RecordController) ConfirmDelete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid record ID")
	if !ok {
		return
	}

	// Confirming a nonexistent record would arm a stage that can never
	// fire; reject it up front.
	if _, err := c.recordService.GetRecordByID(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	stage := c.confirmations.Advance(id)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.DeleteConfirmationResponse{
			RecordID: id,
			Stage:    string(stage),
			Expires:  c.confirmations.Deadline(id),
		},
		Timestamp: time.Now(),
	})
}

// DeleteRecordComplete cascade-deletes a record chain
// @Summary Cascade delete record
// @Description Deletes the record, its paired Extraordinaria, and every later record of the same student+cycle chain. Requires a completed two-stage confirmation.
// @Tags records
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse{data=dto.CascadeDeleteResponse} "Records deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid record ID"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 412 {object} dto.ErrorResponse "Confirmation missing or expired"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /records/{id}/complete [delete]
func (c *RecordController) DeleteRecordComplete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid record ID")
	if !ok {
		return
	}

	if !c.confirmations.Consume(id) {
		middleware.HandleAPIError(ctx, apperrors.ErrConfirmationRequired)
		return
	}

	deleted, err := c.recordService.DeleteRecordComplete(ctx, id)
	if err != nil {
		// Failure resets the flow; the operator starts over.
		c.confirmations.Reset(id)
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.CascadeDeleteResponse{
			Deleted:      deleted,
			DeletedCount: len(deleted),
		},
		Timestamp: time.Now(),
	})
}

// CreateExtraordinaria derives an Extraordinaria record from an Ordinaria base
// @Summary Provision Extraordinaria record
// @Description Creates an Extraordinaria record from an Ordinaria base with one NE enrollment per failing module
// @Tags records
// @Accept json
// @Produce json
// @Param id path int true "Base Ordinaria record ID"
// @Param request body dto.CreateExtraordinariaRequest true "Failing module IDs"
// @Success 201 {object} dto.APIResponse{data=models.Record} "Extraordinaria record created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Extraordinaria already exists for this year pair"
// @Failure 412 {object} dto.ErrorResponse "No matching Ordinaria base record"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /records/{id}/extraordinaria [post]
func (c *RecordController) CreateExtraordinaria(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid record ID")
	if !ok {
		return
	}

	var req dto.CreateExtraordinariaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid provisioning data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record, err := c.recordService.CreateExtraordinaria(ctx, id, req.FailingModuleIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}
