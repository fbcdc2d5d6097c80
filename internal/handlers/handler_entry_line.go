package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/adops_erp/internal/core/ports/services"
	"github.com/SscSPs/adops_erp/internal/dto"
	"github.com/SscSPs/adops_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryLineHandler handles line mutations of draft vouchers.
type entryLineHandler struct {
	lineService portssvc.EntryLineSvc
}

func registerEntryLineRoutes(vouchers *gin.RouterGroup, lineService portssvc.EntryLineSvc) {
	h := &entryLineHandler{lineService: lineService}

	lines := vouchers.Group("/:voucher_id/lines")
	{
		lines.POST("", h.addLine)
		lines.PUT("/:line_id", h.updateLine)
		lines.DELETE("/:line_id", h.deleteLine)
	}
}

// addLine godoc
// @Summary Add an entry line to a draft voucher
// @Tags lines
// @Accept  json
// @Produce  json
// @Param   company_id path int true "Company ID"
// @Param   voucher_id path string true "Voucher ID"
// @Param   line body dto.EntryLineRequest true "Line details"
// @Success 201 {object} dto.EntryLineResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Voucher, account or auxiliary not found"
// @Failure 409 {object} map[string]string "Voucher is approved"
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers/{voucher_id}/lines [post]
func (h *entryLineHandler) addLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.EntryLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	voucherID := c.Param("voucher_id")
	line, err := h.lineService.AddLine(c.Request.Context(), companyID, voucherID, req.ToInput(), userID)
	if err != nil {
		respondError(c, err, "Failed to add line")
		return
	}

	logger.Info("Line added", slog.String("voucher_id", voucherID), slog.String("line_id", line.LineID))
	c.JSON(http.StatusCreated, dto.ToEntryLineResponse(line))
}

// updateLine godoc
// @Summary Replace an entry line of a draft voucher
// @Tags lines
// @Accept  json
// @Produce  json
// @Param   company_id path int true "Company ID"
// @Param   voucher_id path string true "Voucher ID"
// @Param   line_id path string true "Line ID"
// @Param   line body dto.EntryLineRequest true "Line details"
// @Success 200 {object} dto.EntryLineResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Line not found"
// @Failure 409 {object} map[string]string "Voucher is approved"
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers/{voucher_id}/lines/{line_id} [put]
func (h *entryLineHandler) updateLine(c *gin.Context) {
	companyID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.EntryLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	line, err := h.lineService.UpdateLine(c.Request.Context(), companyID, c.Param("voucher_id"), c.Param("line_id"), req.ToInput(), userID)
	if err != nil {
		respondError(c, err, "Failed to update line")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryLineResponse(line))
}

// deleteLine godoc
// @Summary Remove an entry line from a draft voucher
// @Tags lines
// @Param   company_id path int true "Company ID"
// @Param   voucher_id path string true "Voucher ID"
// @Param   line_id path string true "Line ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Line not found"
// @Failure 409 {object} map[string]string "Voucher is approved"
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers/{voucher_id}/lines/{line_id} [delete]
func (h *entryLineHandler) deleteLine(c *gin.Context) {
	companyID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	if err := h.lineService.DeleteLine(c.Request.Context(), companyID, c.Param("voucher_id"), c.Param("line_id"), userID); err != nil {
		respondError(c, err, "Failed to delete line")
		return
	}
	c.Status(http.StatusNoContent)
}
