package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

const iconField = "icon"

// skillCategoryRequest checks a submitted category before anything is uploaded.
// A missing category is reported by the service.
type skillCategoryRequest struct {
	Category string `validate:"omitempty,oneof=frontend backend tools other"`
}

type SkillHandler struct {
	service ports.SkillService
}

func NewSkillHandler(service ports.SkillService) *SkillHandler {
	return &SkillHandler{service: service}
}

// List handles GET /api/v1/skill.
//
// @Summary      List skills
// @Tags         skill
// @Produce      json
// @Success      200  {object}  skillListResponse
// @Router       /skill [get]
func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skillListResponse{Message: "Skills fetched successfully", Skills: skills})
}

// Get handles GET /api/v1/skill/:id.
//
// @Summary      Get a skill
// @Tags         skill
// @Produce      json
// @Param        id   path      string  true  "Skill id"
// @Success      200  {object}  skillResponse
// @Failure      404  {object}  errorResponse
// @Router       /skill/{id} [get]
func (h *SkillHandler) Get(c echo.Context) error {
	skill, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skillResponse{Skill: skill})
}

// Create handles POST /api/v1/skill.
//
// @Summary      Create a skill
// @Tags         skill
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        name      formData  string  true   "Skill name"
// @Param        category  formData  string  true   "frontend, backend, tools or other"
// @Param        icon      formData  file    false  "Icon image"
// @Success      201  {object}  skillResponse
// @Failure      400  {object}  errorResponse
// @Router       /skill [post]
func (h *SkillHandler) Create(c echo.Context, _ domain.Identity) error {
	p, err := readPayload(c)
	if err != nil {
		return err
	}

	category := p.text("category")
	if err := c.Validate(&skillCategoryRequest{Category: category}); err != nil {
		return err
	}

	skill, err := h.service.Create(c.Request().Context(), ports.SkillInput{
		Name:     p.text("name"),
		Category: category,
		Icon:     p.upload(iconField),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, skillResponse{Message: "Skill created successfully", Skill: skill})
}

// Update handles PUT /api/v1/skill/:id.
//
// @Summary      Update a skill
// @Tags         skill
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true   "Skill id"
// @Param        icon  formData  file    false  "Icon image"
// @Success      200  {object}  skillResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /skill/{id} [put]
func (h *SkillHandler) Update(c echo.Context, _ domain.Identity) error {
	p, err := readPayload(c)
	if err != nil {
		return err
	}

	category := p.str("category")
	if category != nil {
		if err := c.Validate(&skillCategoryRequest{Category: *category}); err != nil {
			return err
		}
	}

	skill, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.SkillPatch{
		Name:     p.str("name"),
		Category: category,
		Icon:     p.upload(iconField),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skillResponse{Message: "Skill updated successfully", Skill: skill})
}

// Delete handles DELETE /api/v1/skill/:id.
//
// @Summary      Delete a skill
// @Tags         skill
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Skill id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /skill/{id} [delete]
func (h *SkillHandler) Delete(c echo.Context, _ domain.Identity) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Skill deleted successfully"})
}
