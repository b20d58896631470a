// file: internals/features/crm/quotes/controller/quote_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogService "vahanhub_backend/internals/features/catalog/products/service"
	leadModel "vahanhub_backend/internals/features/crm/leads/model"
	"vahanhub_backend/internals/features/crm/quotes/dto"
	"vahanhub_backend/internals/features/crm/quotes/model"
	financeService "vahanhub_backend/internals/features/finance/partners/service"
	helper "vahanhub_backend/internals/helpers"
	helperAuth "vahanhub_backend/internals/helpers/auth"
)

type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler { return &Handler{DB: db} }

var validate = validator.New()

/* =======================================================
   Create: price + freeze
======================================================= */

// CreateQuote prices the SKU for the lead's dealer and freezes both the
// on-road breakdown and, when asked, the resolved finance scheme.
func (h *Handler) CreateQuote(c *fiber.Ctx) error {
	tenantID, err := helperAuth.GetTenantID(c)
	if err != nil {
		return err
	}

	var in dto.QuoteCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	stateCode := strings.ToUpper(strings.TrimSpace(in.StateCode))

	var lead leadModel.LeadModel
	if err := h.DB.First(&lead, "lead_id = ? AND lead_tenant_id = ?", in.LeadID, tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Lead not found")
	}

	sku, onRoad, err := catalogService.QuoteOnRoad(h.DB, tenantID, in.SKUID, stateCode)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrProductNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, catalogService.ErrNoStatePrice):
			return helper.JsonError(c, fiber.StatusBadRequest, "No price available for this state")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute on-road price")
		}
	}

	snapshot, err := dto.EncodeOnRoadSnapshot(onRoad)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to snapshot quote")
	}

	quote := model.QuoteModel{
		QuoteTenantID:       tenantID,
		QuoteLeadID:         lead.LeadID,
		QuoteSKUID:          sku.SKUID,
		QuoteStateCode:      stateCode,
		QuoteOnRoadSnapshot: snapshot,
		QuoteOnRoadTotal:    onRoad.OnRoadTotal,
		QuoteStatus:         model.QuoteStatusDraft,
	}
	if userID, uerr := helperAuth.GetUserID(c); uerr == nil {
		quote.QuoteCreatedBy = &userID
	}
	if in.ValidDays > 0 {
		until := time.Now().AddDate(0, 0, in.ValidDays)
		quote.QuoteValidUntil = &until
	}

	if in.WithFinance {
		vehicleMake, vehicleModel := "", sku.SKUName
		if sku.Model != nil {
			vehicleModel = sku.Model.ModelName
			if sku.Model.Brand != nil {
				vehicleMake = sku.Model.Brand.BrandName
			}
		}
		leadID := lead.LeadID
		res, rerr := financeService.ResolveForDealer(h.DB, tenantID, vehicleMake, vehicleModel, &leadID)
		if rerr != nil {
			log.Printf("[WARN] Finance resolution failed for quote: %v", rerr)
		} else if res != nil {
			if raw, eerr := dto.EncodeFinanceResolution(res); eerr == nil {
				quote.QuoteFinanceScheme = raw
			}
		}
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quote).Error; err != nil {
			return err
		}
		// pipeline follows the paperwork
		if leadModel.ValidNextStatus(lead.LeadStatus, leadModel.LeadStatusQuoted) {
			return tx.Model(&leadModel.LeadModel{}).
				Where("lead_id = ?", lead.LeadID).
				Update("lead_status", leadModel.LeadStatusQuoted).Error
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create quote")
	}

	return helper.JsonCreated(c, "Quote created successfully", dto.ToQuoteResponse(&quote))
}

/* =======================================================
   List / detail / status
======================================================= */

func (h *Handler) ListQuotes(c *fiber.Ctx) error {
	tenantID, err := helperAuth.GetTenantID(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.QuoteModel{}).Where("quote_tenant_id = ?", tenantID)
	if leadID := strings.TrimSpace(c.Query("lead_id")); leadID != "" {
		id, perr := uuid.Parse(leadID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lead_id")
		}
		q = q.Where("quote_lead_id = ?", id)
	}
	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		q = q.Where("quote_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count quotes")
	}
	var quotes []model.QuoteModel
	if err := q.Order("quote_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&quotes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quotes")
	}

	return helper.JsonList(c, "OK", dto.ToQuoteResponses(quotes),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (h *Handler) GetQuote(c *fiber.Ctx) error {
	tenantID, err := helperAuth.GetTenantID(c)
	if err != nil {
		return err
	}
	quoteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quote id")
	}

	var quote model.QuoteModel
	if err := h.DB.First(&quote, "quote_id = ? AND quote_tenant_id = ?", quoteID, tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Quote not found")
	}
	return helper.JsonOK(c, "OK", dto.ToQuoteResponse(&quote))
}

func (h *Handler) UpdateQuoteStatus(c *fiber.Ctx) error {
	tenantID, err := helperAuth.GetTenantID(c)
	if err != nil {
		return err
	}
	quoteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quote id")
	}

	var in dto.QuoteStatusDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var quote model.QuoteModel
	if err := h.DB.First(&quote, "quote_id = ? AND quote_tenant_id = ?", quoteID, tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Quote not found")
	}
	if quote.QuoteStatus == model.QuoteStatusAccepted {
		return helper.JsonError(c, fiber.StatusBadRequest, "Accepted quotes are immutable")
	}
	if quote.QuoteValidUntil != nil && time.Now().After(*quote.QuoteValidUntil) && in.Status == model.QuoteStatusAccepted {
		return helper.JsonError(c, fiber.StatusBadRequest, "Quote has expired")
	}

	quote.QuoteStatus = in.Status
	if err := h.DB.Save(&quote).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update quote")
	}
	return helper.JsonUpdated(c, "Quote status updated successfully", dto.ToQuoteResponse(&quote))
}
