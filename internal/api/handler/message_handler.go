package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/internintelligence/portfolio-api/internal/api/metrics"
	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type messageRequest struct {
	Name    string `json:"name"    form:"name"`
	Email   string `json:"email"   form:"email"`
	Message string `json:"message" form:"message"`
}

type markReadRequest struct {
	Read *bool `json:"read"`
}

// Submit handles POST /api/v1/message, the public contact form.
//
// @Summary      Send a contact message
// @Tags         message
// @Accept       json
// @Produce      json
// @Param        body  body      messageRequest  true  "Contact form"
// @Success      201   {object}  messageDataResponse
// @Failure      400   {object}  errorResponse
// @Router       /message [post]
func (h *MessageHandler) Submit(c echo.Context) error {
	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	msg, err := h.service.Submit(c.Request().Context(), ports.MessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	metrics.MessagesReceivedTotal.Inc()
	return c.JSON(http.StatusCreated, messageDataResponse{Message: "Message sent successfully", Data: msg})
}

// List handles GET /api/v1/message.
//
// @Summary      List contact messages
// @Tags         message
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageListResponse
// @Failure      401  {object}  errorResponse
// @Router       /message [get]
func (h *MessageHandler) List(c echo.Context, _ domain.Identity) error {
	messages, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageListResponse{Message: "Messages fetched successfully", Messages: messages})
}

// MarkRead handles PATCH /api/v1/message/:id/read. The read flag defaults to true.
//
// @Summary      Mark a message read or unread
// @Tags         message
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true   "Message id"
// @Param        body  body      markReadRequest  false  "Read flag"
// @Success      200   {object}  messageDataResponse
// @Failure      404   {object}  errorResponse
// @Router       /message/{id}/read [patch]
func (h *MessageHandler) MarkRead(c echo.Context, _ domain.Identity) error {
	p, err := readPayload(c)
	if err != nil {
		return err
	}
	read := true
	if f := p.flag("read"); f != nil {
		read = *f
	}

	msg, err := h.service.MarkRead(c.Request().Context(), c.Param("id"), read)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageDataResponse{Message: "Message status updated", Data: msg})
}

// Delete handles DELETE /api/v1/message/:id.
//
// @Summary      Delete a message
// @Tags         message
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /message/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context, _ domain.Identity) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Message deleted successfully"})
}
