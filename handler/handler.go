package handler

import (
	"net/http"
	"path/filepath"
	"pumpsizer/pkg/logger"
	"pumpsizer/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// CalculateSystem sizes one pumping system and stores the run as a case.
// @Summary Size a pumping system
// @Description Computes friction losses, total manometric head, NPSH margin and the system curve for one suction/discharge configuration. The run is persisted and its case id returned with the result.
// @Tags systems
// @Accept json
// @Produce json
// @Param request body calculateRequest true "System configuration"
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Failure 422 {object} apiResponse
// @Router /systems/calculate [post]
func (h *Handler) CalculateSystem(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Logger.Errorf("bad calculate payload: %v", err)
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	outcome, err := h.svc.RunCalculation(toCalculationInput(&req))
	if err != nil {
		status, code := classify(err)
		if code == errInternalServer {
			logger.Logger.Errorf("calculation failed: %v", err)
		}
		c.JSON(status, fail(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, success(outcome))
}

// ListMaterials returns the pipe material catalog.
// @Summary List pipe materials
// @Tags materials
// @Produce json
// @Success 200 {object} apiResponse
// @Router /materials [get]
func (h *Handler) ListMaterials(c *gin.Context) {
	c.JSON(http.StatusOK, success(h.svc.Materials()))
}

// ListCases returns stored cases, newest first.
// @Summary List stored calculation cases
// @Tags cases
// @Produce json
// @Param project query string false "Filter by project name"
// @Param limit query int false "Maximum number of cases"
// @Success 200 {object} apiResponse
// @Router /cases [get]
func (h *Handler) ListCases(c *gin.Context) {
	var query listCasesRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	cases, err := h.svc.ListCases(query.Project, query.Limit)
	if err != nil {
		logger.Logger.Errorf("list cases: %v", err)
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}

	c.JSON(http.StatusOK, success(cases))
}

// GetCase returns one stored case with its request and result.
// @Summary Fetch one stored case
// @Tags cases
// @Produce json
// @Param caseId path string true "Case id"
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /cases/{caseId} [get]
func (h *Handler) GetCase(c *gin.Context) {
	caseID := c.Param("caseId")
	detail, err := h.svc.GetCase(caseID)
	if err != nil {
		status, code := classify(err)
		if code == errInternalServer {
			logger.Logger.Errorf("fetch case %s: %v", caseID, err)
		}
		c.JSON(status, fail(code, err.Error()))
		return
	}

	c.JSON(http.StatusOK, success(detail))
}

// GetCaseReport streams the xlsx report for a case, rendering it on demand.
// @Summary Download the xlsx report for a case
// @Tags cases
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param caseId path string true "Case id"
// @Success 200 {file} binary
// @Failure 404 {object} apiResponse
// @Router /cases/{caseId}/report [get]
func (h *Handler) GetCaseReport(c *gin.Context) {
	caseID := c.Param("caseId")
	path, err := h.svc.CaseReport(caseID)
	if err != nil {
		status, code := classify(err)
		if code == errInternalServer {
			logger.Logger.Errorf("report for case %s: %v", caseID, err)
		}
		c.JSON(status, fail(code, err.Error()))
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}
