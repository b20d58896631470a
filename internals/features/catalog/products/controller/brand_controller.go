// file: internals/features/catalog/products/controller/brand_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vahanhub_backend/internals/features/catalog/products/dto"
	"vahanhub_backend/internals/features/catalog/products/model"
	helper "vahanhub_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler { return &Handler{DB: db} }

var validate = validator.New()

var brandSlugOpts = helper.SlugOptions{
	Table:            "brands",
	SlugColumn:       "brand_slug",
	SoftDeleteColumn: "brand_deleted_at",
	MaxLen:           120,
	DefaultBase:      "brand",
}

/* ===== CRUD ===== */

func (h *Handler) CreateBrand(c *fiber.Ctx) error {
	var in dto.BrandCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	base := in.BrandName
	if in.BrandSlug != nil && strings.TrimSpace(*in.BrandSlug) != "" {
		base = *in.BrandSlug
	}
	slug, err := helper.GenerateUniqueSlug(h.DB, brandSlugOpts, base)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	brand := model.BrandModel{
		BrandName:     strings.TrimSpace(in.BrandName),
		BrandSlug:     slug,
		BrandLogo:     in.BrandLogo,
		BrandIsActive: true,
	}
	if err := h.DB.Create(&brand).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create brand")
	}
	return helper.JsonCreated(c, "Brand created successfully", dto.ToBrandResponse(&brand))
}

func (h *Handler) ListBrands(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.BrandModel{})
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		q = q.Where("brand_is_active = ?", active == "true")
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(brand_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count brands")
	}
	var brands []model.BrandModel
	if err := q.Order("brand_name ASC").Offset(p.Offset).Limit(p.Limit).Find(&brands).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch brands")
	}

	out := make([]dto.BrandResponse, 0, len(brands))
	for i := range brands {
		out = append(out, *dto.ToBrandResponse(&brands[i]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (h *Handler) UpdateBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid brand id")
	}

	var in dto.BrandUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var brand model.BrandModel
	if err := h.DB.First(&brand, "brand_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Brand not found")
	}

	if in.BrandName != nil {
		brand.BrandName = strings.TrimSpace(*in.BrandName)
	}
	if in.BrandLogo != nil {
		brand.BrandLogo = in.BrandLogo
	}
	if in.BrandIsActive != nil {
		brand.BrandIsActive = *in.BrandIsActive
	}
	if err := h.DB.Save(&brand).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update brand")
	}
	return helper.JsonUpdated(c, "Brand updated successfully", dto.ToBrandResponse(&brand))
}

func (h *Handler) DeleteBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid brand id")
	}
	res := h.DB.Delete(&model.BrandModel{}, "brand_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete brand")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Brand not found")
	}
	return helper.JsonDeleted(c, "Brand deleted successfully", fiber.Map{"brand_id": id})
}
