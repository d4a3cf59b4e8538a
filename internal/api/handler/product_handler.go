package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

const (
	imageField            = "image"
	additionalImagesField = "additionalImages"
)

type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/v1/product.
//
// @Summary      List products
// @Tags         product
// @Produce      json
// @Param        featured  query     bool  false  "Only featured (true) or only non-featured (false) products"
// @Success      200       {object}  productListResponse
// @Router       /product [get]
func (h *ProductHandler) List(c echo.Context) error {
	var filter ports.ProductFilter
	if v := c.QueryParam("featured"); v != "" {
		featured := v == "true"
		filter.Featured = &featured
	}

	products, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productListResponse{Message: "Products fetched successfully", Products: products})
}

// Get handles GET /api/v1/product/:id.
//
// @Summary      Get a product
// @Tags         product
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /product/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productResponse{Product: product})
}

// Create handles POST /api/v1/product.
//
// @Summary      Create a product
// @Tags         product
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        title             formData  string  true   "Title"
// @Param        descriptionEn     formData  string  true   "English description"
// @Param        descriptionAr     formData  string  true   "Arabic description"
// @Param        tech              formData  string  false  "JSON array or comma-separated list"
// @Param        featured          formData  bool    false  "Featured on the home page"
// @Param        image             formData  file    false  "Main image (or an image URL field)"
// @Param        additionalImages  formData  file    false  "Up to 5 gallery images"
// @Success      201  {object}  productResponse
// @Failure      400  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /product [post]
func (h *ProductHandler) Create(c echo.Context, _ domain.Identity) error {
	p, err := readPayload(c)
	if err != nil {
		return err
	}

	tech, _ := p.techList("tech")
	in := ports.ProductInput{
		Title:            p.text("title"),
		DescriptionEN:    p.text("descriptionEn"),
		DescriptionAR:    p.text("descriptionAr"),
		Tech:             tech,
		GitHub:           p.text("github"),
		Demo:             p.text("demo"),
		Image:            p.text("image"),
		ImageUpload:      p.upload(imageField),
		AdditionalImages: p.uploads(additionalImagesField),
	}
	if f := p.flag("featured"); f != nil {
		in.Featured = *f
	}

	product, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, productResponse{Message: "Product created successfully", Product: product})
}

// Update handles PUT /api/v1/product/:id. New additional images are
// appended to the gallery.
//
// @Summary      Update a product
// @Tags         product
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id                path      string  true   "Product id"
// @Param        image             formData  file    false  "Replacement main image"
// @Param        additionalImages  formData  file    false  "Gallery images to append"
// @Success      200  {object}  productResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /product/{id} [put]
func (h *ProductHandler) Update(c echo.Context, _ domain.Identity) error {
	p, err := readPayload(c)
	if err != nil {
		return err
	}

	patch := ports.ProductPatch{
		Title:            p.str("title"),
		DescriptionEN:    p.str("descriptionEn"),
		DescriptionAR:    p.str("descriptionAr"),
		GitHub:           p.str("github"),
		Demo:             p.str("demo"),
		Featured:         p.flag("featured"),
		Image:            p.str("image"),
		ImageUpload:      p.upload(imageField),
		AdditionalImages: p.uploads(additionalImagesField),
	}
	if tech, ok := p.techList("tech"); ok {
		patch.Tech = &tech
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productResponse{Message: "Product updated successfully", Product: product})
}

// Delete handles DELETE /api/v1/product/:id.
//
// @Summary      Delete a product
// @Tags         product
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /product/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context, _ domain.Identity) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}
