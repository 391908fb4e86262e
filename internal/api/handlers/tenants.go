package handlers

import (
	"net/http"

	"notes-saas-backend/internal/auth"
	apperrors "notes-saas-backend/internal/errors"
	"notes-saas-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler handles HTTP requests for tenants
type TenantHandler struct {
	tenantService service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
	}
}

// GetInfo returns a tenant with its note quota state
// @Summary Get tenant
// @Description Get tenant information by slug including note count and quota
// @Tags tenants
// @Produce json
// @Param slug path string true "Tenant slug"
// @Success 200 {object} map[string]interface{} "Tenant information"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /api/tenants/{slug} [get]
func (h *TenantHandler) GetInfo(c *gin.Context) {
	slug, ok := parseSlugParam(c)
	if !ok {
		return
	}

	tenant, err := h.tenantService.GetInfo(slug)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"tenant": tenant})
}

// Upgrade moves the tenant to the pro plan
// @Summary Upgrade tenant
// @Description Upgrade a tenant to the Pro plan. Admins of the tenant only; one-way.
// @Tags tenants
// @Produce json
// @Param slug path string true "Tenant slug"
// @Success 200 {object} map[string]interface{} "Tenant upgraded to Pro successfully"
// @Failure 400 {object} ErrorResponse "Tenant is already on Pro plan"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /api/tenants/{slug}/upgrade [post]
func (h *TenantHandler) Upgrade(c *gin.Context) {
	acting, err := auth.CurrentTenant(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, apperrors.ErrTokenRequired.Error())
		return
	}
	slug, ok := parseSlugParam(c)
	if !ok {
		return
	}

	tenant, err := h.tenantService.Upgrade(acting, slug)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessageData(c, http.StatusOK, "Tenant upgraded to Pro successfully", gin.H{"tenant": tenant})
}

// Stats returns usage statistics for the tenant
// @Summary Tenant statistics
// @Description Get note totals, priority and category breakdowns for a tenant. Admins of the tenant only.
// @Tags tenants
// @Produce json
// @Param slug path string true "Tenant slug"
// @Success 200 {object} map[string]interface{} "Tenant statistics"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /api/tenants/{slug}/stats [get]
func (h *TenantHandler) Stats(c *gin.Context) {
	acting, err := auth.CurrentTenant(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, apperrors.ErrTokenRequired.Error())
		return
	}
	slug, ok := parseSlugParam(c)
	if !ok {
		return
	}

	stats, err := h.tenantService.Stats(acting, slug)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"stats": stats})
}
