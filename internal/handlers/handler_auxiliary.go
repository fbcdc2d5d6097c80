package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/adops_erp/internal/core/ports/services"
	"github.com/SscSPs/adops_erp/internal/dto"
	"github.com/SscSPs/adops_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// auxiliaryHandler handles HTTP requests related to subledger records.
type auxiliaryHandler struct {
	auxiliaryService portssvc.AuxiliarySvcFacade
}

func registerAuxiliaryRoutes(rg *gin.RouterGroup, auxiliaryService portssvc.AuxiliarySvcFacade) {
	h := &auxiliaryHandler{auxiliaryService: auxiliaryService}
	rg.POST("/auxiliaries", h.ensureAuxiliary)
}

// ensureAuxiliary godoc
// @Summary Find or create an auxiliary
// @Description Returns the auxiliary with the given type and code, creating it when absent. A code is derived when omitted.
// @Tags auxiliaries
// @Accept  json
// @Produce  json
// @Param   company_id path int true "Company ID"
// @Param   auxiliary body dto.EnsureAuxiliaryRequest true "Auxiliary details"
// @Success 200 {object} dto.AuxiliaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /companies/{company_id}/auxiliaries [post]
func (h *auxiliaryHandler) ensureAuxiliary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.EnsureAuxiliaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	aux, err := h.auxiliaryService.EnsureAuxiliary(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to ensure auxiliary")
		return
	}

	logger.Info("Auxiliary ensured", slog.String("auxiliary_id", aux.AuxiliaryID), slog.String("code", aux.Code))
	c.JSON(http.StatusOK, dto.ToAuxiliaryResponse(aux))
}
