// file: internals/features/crm/leads/controller/lead_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vahanhub_backend/internals/features/crm/leads/dto"
	"vahanhub_backend/internals/features/crm/leads/model"
	helper "vahanhub_backend/internals/helpers"
	helperAuth "vahanhub_backend/internals/helpers/auth"
)

type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler { return &Handler{DB: db} }

var validate = validator.New()

/* =======================================================
   Public capture
======================================================= */

// CaptureLead is the public enquiry endpoint. The tenant must be an
// active dealer; anything else gets the same 404 to avoid probing.
func (h *Handler) CaptureLead(c *fiber.Ctx) error {
	var in dto.LeadCaptureDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := h.DB.Table("tenants").
		Where("tenant_id = ? AND tenant_type = 'DEALER' AND tenant_status = 'ACTIVE' AND tenant_deleted_at IS NULL", in.TenantID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify dealer")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Dealer not found")
	}

	lead := in.ToModel()
	if err := h.DB.Create(lead).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to capture lead")
	}

	return helper.JsonCreated(c, "Enquiry received. The dealer will contact you soon.", dto.ToLeadResponse(lead))
}

/* =======================================================
   Dealer pipeline
======================================================= */

func (h *Handler) ListLeads(c *fiber.Ctx) error {
	tenantID, err := helperAuth.GetTenantID(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.LeadModel{}).Where("lead_tenant_id = ?", tenantID)
	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		q = q.Where("lead_status = ?", status)
	}
	if assigned := strings.TrimSpace(c.Query("assigned_to")); assigned != "" {
		id, perr := uuid.Parse(assigned)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assigned_to")
		}
		q = q.Where("lead_assigned_to = ?", id)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(lead_customer_name) LIKE ? OR lead_customer_phone LIKE ?", like, "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count leads")
	}
	var leads []model.LeadModel
	if err := q.Order("lead_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&leads).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch leads")
	}

	return helper.JsonList(c, "OK", dto.ToLeadResponses(leads),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (h *Handler) GetLead(c *fiber.Ctx) error {
	tenantID, err := helperAuth.GetTenantID(c)
	if err != nil {
		return err
	}
	leadID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lead id")
	}

	var lead model.LeadModel
	if err := h.DB.First(&lead, "lead_id = ? AND lead_tenant_id = ?", leadID, tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Lead not found")
	}
	return helper.JsonOK(c, "OK", dto.ToLeadResponse(&lead))
}

// UpdateLead handles assignment, notes and status transitions. Illegal
// transitions (backwards, or out of a terminal state) are rejected.
func (h *Handler) UpdateLead(c *fiber.Ctx) error {
	tenantID, err := helperAuth.GetTenantID(c)
	if err != nil {
		return err
	}
	leadID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lead id")
	}

	var in dto.LeadUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var lead model.LeadModel
	if err := h.DB.First(&lead, "lead_id = ? AND lead_tenant_id = ?", leadID, tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Lead not found")
	}

	if in.Status != nil && *in.Status != lead.LeadStatus {
		if !model.ValidNextStatus(lead.LeadStatus, *in.Status) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"Cannot move lead from "+lead.LeadStatus+" to "+*in.Status)
		}
		lead.LeadStatus = *in.Status
	}
	if in.AssignedTo != nil {
		lead.LeadAssignedTo = in.AssignedTo
	}
	if in.PreferredFinancierID != nil {
		lead.LeadPreferredFinancierID = in.PreferredFinancierID
	}
	if in.Tags != nil {
		lead.LeadTags = in.Tags
	}
	if in.Notes != nil {
		lead.LeadNotes = in.Notes
	}

	if err := h.DB.Save(&lead).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lead")
	}
	return helper.JsonUpdated(c, "Lead updated successfully", dto.ToLeadResponse(&lead))
}

func (h *Handler) DeleteLead(c *fiber.Ctx) error {
	tenantID, err := helperAuth.GetTenantID(c)
	if err != nil {
		return err
	}
	leadID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lead id")
	}

	res := h.DB.Delete(&model.LeadModel{}, "lead_id = ? AND lead_tenant_id = ?", leadID, tenantID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lead")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lead not found")
	}
	return helper.JsonDeleted(c, "Lead deleted successfully", fiber.Map{"lead_id": leadID})
}
