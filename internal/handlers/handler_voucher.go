package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/adops_erp/internal/core/domain"
	portssvc "github.com/SscSPs/adops_erp/internal/core/ports/services"
	"github.com/SscSPs/adops_erp/internal/dto"
	"github.com/SscSPs/adops_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

// newVoucherHandler creates a new voucherHandler.
func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{
		voucherService: vs,
	}
}

// RegisterVoucherRoutes registers voucher, entry line and auxiliary routes
// under a company-scoped group.
func RegisterVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade, auxiliaryService portssvc.AuxiliarySvcFacade) {
	RegisterValidators()
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("/manual", h.createManualVoucher)
		vouchers.POST("/opening", h.createOpeningVoucher)
		vouchers.POST("/closing", h.createClosingVoucher)
		vouchers.POST("/ufv-adjustment", h.createUFVAdjustment)
		vouchers.POST("/aitb", h.createAITBVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucher_id", h.getVoucher)
		vouchers.GET("/:voucher_id/balance", h.checkBalance)
		vouchers.POST("/:voucher_id/approve", h.approveVoucher)

		registerEntryLineRoutes(vouchers, voucherService)
	}

	registerAuxiliaryRoutes(rg, auxiliaryService)
}

// draftRequest is satisfied by every create-voucher body.
type draftRequest interface {
	ToSpec() domain.DraftSpec
}

// createDraft binds a draft body of type R and creates the voucher.
func createDraft[R draftRequest](h *voucherHandler, c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	spec := req.ToSpec()
	logger = logger.With(slog.Int64("company_id", companyID), slog.String("draft_kind", string(spec.Kind())))
	logger.Info("Received request to create draft voucher")

	voucher, err := h.voucherService.CreateDraft(c.Request.Context(), companyID, spec, userID)
	if err != nil {
		respondError(c, err, "Failed to create voucher")
		return
	}

	logger.Info("Draft voucher created", slog.String("voucher_id", voucher.VoucherID))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// createManualVoucher godoc
// @Summary Create a manual draft voucher
// @Description Creates a header-only draft. Lines are added separately.
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   company_id path int true "Company ID"
// @Param   voucher body dto.CreateManualVoucherRequest true "Voucher header"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers/manual [post]
func (h *voucherHandler) createManualVoucher(c *gin.Context) {
	createDraft[dto.CreateManualVoucherRequest](h, c)
}

// createOpeningVoucher godoc
// @Summary Create the opening voucher of a fiscal year
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   company_id path int true "Company ID"
// @Param   voucher body dto.CreateOpeningVoucherRequest true "Opening details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "An opening voucher already exists for the year"
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers/opening [post]
func (h *voucherHandler) createOpeningVoucher(c *gin.Context) {
	createDraft[dto.CreateOpeningVoucherRequest](h, c)
}

// createClosingVoucher godoc
// @Summary Create a closing voucher
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   company_id path int true "Company ID"
// @Param   voucher body dto.CreateClosingVoucherRequest true "Closing details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers/closing [post]
func (h *voucherHandler) createClosingVoucher(c *gin.Context) {
	createDraft[dto.CreateClosingVoucherRequest](h, c)
}

// createUFVAdjustment godoc
// @Summary Create a UFV revaluation adjustment
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   company_id path int true "Company ID"
// @Param   voucher body dto.CreateUFVAdjustmentRequest true "UFV adjustment details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers/ufv-adjustment [post]
func (h *voucherHandler) createUFVAdjustment(c *gin.Context) {
	createDraft[dto.CreateUFVAdjustmentRequest](h, c)
}

// createAITBVoucher godoc
// @Summary Create the AITB adjustment of a bank account for one period
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   company_id path int true "Company ID"
// @Param   voucher body dto.CreateAITBVoucherRequest true "AITB details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "An AITB voucher already exists for the period"
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers/aitb [post]
func (h *voucherHandler) createAITBVoucher(c *gin.Context) {
	createDraft[dto.CreateAITBVoucherRequest](h, c)
}

// listVouchers godoc
// @Summary List vouchers
// @Description Lists voucher headers newest first, with token-based pagination
// @Tags vouchers
// @Produce  json
// @Param   company_id path int true "Company ID"
// @Param   limit query int false "Page size (max 100)"
// @Param   nextToken query string false "Token from the previous page"
// @Param   status query string false "Draft or Approved"
// @Param   voucherType query string false "Voucher type"
// @Param   fiscalYear query int false "Fiscal year"
// @Success 200 {object} dto.ListVouchersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	companyID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.voucherService.ListVouchers(c.Request.Context(), companyID, userID, params)
	if err != nil {
		respondError(c, err, "Failed to list vouchers")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getVoucher godoc
// @Summary Get a voucher with its lines
// @Tags vouchers
// @Produce  json
// @Param   company_id path int true "Company ID"
// @Param   voucher_id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} map[string]string "Voucher not found"
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers/{voucher_id} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	companyID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	voucher, err := h.voucherService.GetVoucher(c.Request.Context(), companyID, c.Param("voucher_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve voucher")
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// checkBalance godoc
// @Summary Check whether a voucher balances
// @Description Runs the balance validator without changing the voucher
// @Tags vouchers
// @Produce  json
// @Param   company_id path int true "Company ID"
// @Param   voucher_id path string true "Voucher ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} map[string]string "Voucher not found"
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers/{voucher_id}/balance [get]
func (h *voucherHandler) checkBalance(c *gin.Context) {
	companyID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	voucherID := c.Param("voucher_id")

	result, err := h.voucherService.CheckBalance(c.Request.Context(), companyID, voucherID, userID)
	if err != nil {
		respondError(c, err, "Failed to check voucher balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(voucherID, *result))
}

// approveVoucher godoc
// @Summary Approve a draft voucher
// @Description Validates balance and assigns the next correlative number for the voucher type
// @Tags vouchers
// @Produce  json
// @Param   company_id path int true "Company ID"
// @Param   voucher_id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Voucher is not balanced"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 409 {object} map[string]string "Voucher already approved"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers/{voucher_id}/approve [post]
func (h *voucherHandler) approveVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	voucherID := c.Param("voucher_id")
	logger = logger.With(slog.Int64("company_id", companyID), slog.String("voucher_id", voucherID))

	voucher, err := h.voucherService.Approve(c.Request.Context(), companyID, voucherID, userID)
	if err != nil {
		respondError(c, err, "Failed to approve voucher")
		return
	}

	logger.Info("Voucher approved", slog.String("number", *voucher.Number))
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}
