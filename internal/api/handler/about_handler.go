package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

// profileImageField is the multipart field carrying the profile picture.
const profileImageField = "profileImage"

type AboutHandler struct {
	service ports.AboutService
}

func NewAboutHandler(service ports.AboutService) *AboutHandler {
	return &AboutHandler{service: service}
}

// List handles GET /api/v1/about.
//
// @Summary      List about entries
// @Tags         about
// @Produce      json
// @Success      200  {object}  aboutListResponse
// @Router       /about [get]
func (h *AboutHandler) List(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, aboutListResponse{Message: "About content fetched successfully", About: entries})
}

// Get handles GET /api/v1/about/:id.
//
// @Summary      Get an about entry
// @Tags         about
// @Produce      json
// @Param        id   path      string  true  "About entry id"
// @Success      200  {object}  aboutResponse
// @Failure      404  {object}  errorResponse
// @Router       /about/{id} [get]
func (h *AboutHandler) Get(c echo.Context) error {
	about, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, aboutResponse{About: about})
}

// Create handles POST /api/v1/about.
//
// @Summary      Create an about entry
// @Tags         about
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        profileImage  formData  file  false  "Profile picture"
// @Success      201  {object}  aboutResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /about [post]
func (h *AboutHandler) Create(c echo.Context, _ domain.Identity) error {
	p, err := readPayload(c)
	if err != nil {
		return err
	}

	en, ar := p.localized("description")
	in := ports.AboutInput{
		Name:         p.text("name"),
		Role:         p.text("role"),
		Description:  domain.Localized{EN: deref(en), AR: deref(ar)},
		ProfileImage: p.text("profileImage"),
		Address:      p.text("address"),
		Phone:        p.text("phone"),
		Email:        p.text("email"),
		CVLink:       p.text("cvLink"),
		Upload:       p.upload(profileImageField),
	}

	about, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, aboutResponse{Message: "About entry created successfully", About: about})
}

// Update handles PUT /api/v1/about/:id. Fields that are not sent keep
// their stored value.
//
// @Summary      Update an about entry
// @Tags         about
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id            path      string  true   "About entry id"
// @Param        profileImage  formData  file    false  "Profile picture"
// @Success      200  {object}  aboutResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /about/{id} [put]
func (h *AboutHandler) Update(c echo.Context, _ domain.Identity) error {
	p, err := readPayload(c)
	if err != nil {
		return err
	}

	en, ar := p.localized("description")
	patch := ports.AboutPatch{
		Name:          p.str("name"),
		Role:          p.str("role"),
		DescriptionEN: en,
		DescriptionAR: ar,
		ProfileImage:  p.str("profileImage"),
		Address:       p.str("address"),
		Phone:         p.str("phone"),
		Email:         p.str("email"),
		CVLink:        p.str("cvLink"),
		Upload:        p.upload(profileImageField),
	}

	about, err := h.service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, aboutResponse{Message: "About entry updated successfully", About: about})
}

// Delete handles DELETE /api/v1/about/:id.
//
// @Summary      Delete an about entry
// @Tags         about
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "About entry id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /about/{id} [delete]
func (h *AboutHandler) Delete(c echo.Context, _ domain.Identity) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "About entry deleted successfully"})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
