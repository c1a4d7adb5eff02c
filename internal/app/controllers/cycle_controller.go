package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvidal/gestifp/internal/app/models"
	"github.com/mvidal/gestifp/internal/app/models/dto"
	"github.com/mvidal/gestifp/internal/app/services"
	"github.com/mvidal/gestifp/internal/middleware"
)

// CycleController handles cycle and module reference data
type CycleController struct {
	cycleService *services.CycleService
}

// NewCycleController creates a new CycleController
func NewCycleController(cycleService *services.CycleService) *CycleController {
	return &CycleController{
		cycleService: cycleService,
	}
}

// CreateCycle handles cycle creation
// @Summary Create a new cycle
// @Description Creates a new formative cycle definition
// @Tags cycles
// @Accept json
// @Produce json
// @Param request body dto.CreateCycleRequest true "Cycle information"
// @Success 201 {object} dto.APIResponse{data=models.Cycle} "Cycle created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Cycle already exists for this code and year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cycles [post]
func (c *CycleController) CreateCycle(ctx *gin.Context) {
	var req dto.CreateCycleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid cycle data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	cycle := req.ToModel()
	if err := c.cycleService.CreateCycle(ctx, cycle); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      cycle,
		Timestamp: time.Now(),
	})
}

// GetCycles retrieves all cycles
// @Summary List cycles
// @Description Retrieves all formative cycles
// @Tags cycles
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Cycle} "Cycles retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cycles [get]
func (c *CycleController) GetCycles(ctx *gin.Context) {
	cycles, err := c.cycleService.GetCycles(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      cycles,
		Timestamp: time.Now(),
	})
}

// GetCycleByID retrieves a cycle with its modules
// @Summary Get cycle by ID
// @Description Retrieves a specific cycle with its modules
// @Tags cycles
// @Accept json
// @Produce json
// @Param id path int true "Cycle ID"
// @Success 200 {object} dto.APIResponse{data=models.Cycle} "Cycle retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid cycle ID"
// @Failure 404 {object} dto.ErrorResponse "Cycle not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cycles/{id} [get]
func (c *CycleController) GetCycleByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid cycle ID")
	if !ok {
		return
	}

	cycle, err := c.cycleService.GetCycleByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      cycle,
		Timestamp: time.Now(),
	})
}

// UpdateCycle updates an existing cycle
// @Summary Update cycle
// @Description Updates an existing cycle definition
// @Tags cycles
// @Accept json
// @Produce json
// @Param id path int true "Cycle ID"
// @Param request body dto.CreateCycleRequest true "Cycle information"
// @Success 200 {object} dto.APIResponse{data=models.Cycle} "Cycle updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Cycle not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cycles/{id} [put]
func (c *CycleController) UpdateCycle(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid cycle ID")
	if !ok {
		return
	}

	var req dto.CreateCycleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid cycle data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	cycle := req.ToModel()
	cycle.ID = id

	if err := c.cycleService.UpdateCycle(ctx, cycle); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      cycle,
		Timestamp: time.Now(),
	})
}

// DeleteCycle removes a cycle
// @Summary Delete cycle
// @Description Removes a cycle definition
// @Tags cycles
// @Accept json
// @Produce json
// @Param id path int true "Cycle ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Cycle deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid cycle ID"
// @Failure 404 {object} dto.ErrorResponse "Cycle not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cycles/{id} [delete]
func (c *CycleController) DeleteCycle(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid cycle ID")
	if !ok {
		return
	}

	if err := c.cycleService.DeleteCycle(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Cycle deleted successfully"},
		Timestamp: time.Now(),
	})
}

// GetModules retrieves the modules of a cycle
// @Summary List cycle modules
// @Description Retrieves all modules belonging to a cycle
// @Tags cycles
// @Accept json
// @Produce json
// @Param id path int true "Cycle ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Module} "Modules retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid cycle ID"
// @Failure 404 {object} dto.ErrorResponse "Cycle not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cycles/{id}/modules [get]
func (c *CycleController) GetModules(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid cycle ID")
	if !ok {
		return
	}

	modules, err := c.cycleService.GetModules(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      modules,
		Timestamp: time.Now(),
	})
}

// CreateModule adds a module to a cycle
// @Summary Create module
// @Description Adds a module to a cycle
// @Tags cycles
// @Accept json
// @Produce json
// @Param id path int true "Cycle ID"
// @Param request body dto.CreateModuleRequest true "Module information"
// @Success 201 {object} dto.APIResponse{data=models.Module} "Module created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Cycle not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cycles/{id}/modules [post]
func (c *CycleController) CreateModule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid cycle ID")
	if !ok {
		return
	}

	var req dto.CreateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid module data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	module := &models.Module{
		CycleID:    id,
		Name:       req.Name,
		Code:       req.Code,
		CourseYear: req.CourseYear,
	}

	if err := c.cycleService.CreateModule(ctx, module); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      module,
		Timestamp: time.Now(),
	})
}

// UpdateModule updates an existing module
// @Summary Update module
// @Description Updates a module's information
// @Tags cycles
// @Accept json
// @Produce json
// @Param id path int true "Module ID"
// @Param request body dto.UpdateModuleRequest true "Module information"
// @Success 200 {object} dto.APIResponse{data=models.Module} "Module updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /modules/{id} [put]
func (c *CycleController) UpdateModule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid module ID")
	if !ok {
		return
	}

	var req dto.UpdateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid module data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	module := &models.Module{
		ID:         id,
		Name:       req.Name,
		Code:       req.Code,
		CourseYear: req.CourseYear,
	}

	if err := c.cycleService.UpdateModule(ctx, module); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      module,
		Timestamp: time.Now(),
	})
}

// DeleteModule removes a module
// @Summary Delete module
// @Description Removes a module from its cycle
// @Tags cycles
// @Accept json
// @Produce json
// @Param id path int true "Module ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Module deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid module ID"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /modules/{id} [delete]
func (c *CycleController) DeleteModule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid module ID")
	if !ok {
		return
	}

	if err := c.cycleService.DeleteModule(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Module deleted successfully"},
		Timestamp: time.Now(),
	})
}
