package handler

import "github.com/internintelligence/portfolio-api/internal/core/domain"

// errorResponse is the error envelope rendered by the API error handler.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type aboutListResponse struct {
	Message string          `json:"message"`
	About   []*domain.About `json:"about"`
}

type aboutResponse struct {
	Message string        `json:"message,omitempty"`
	About   *domain.About `json:"about"`
}

type skillListResponse struct {
	Message string          `json:"message"`
	Skills  []*domain.Skill `json:"skills"`
}

type skillResponse struct {
	Message string        `json:"message,omitempty"`
	Skill   *domain.Skill `json:"skill"`
}

type productListResponse struct {
	Message  string            `json:"message"`
	Products []*domain.Product `json:"products"`
}

type productResponse struct {
	Message string          `json:"message,omitempty"`
	Product *domain.Product `json:"product"`
}

type messageListResponse struct {
	Message  string            `json:"message"`
	Messages []*domain.Message `json:"messages"`
}

type messageDataResponse struct {
	Message string          `json:"message"`
	Data    *domain.Message `json:"data"`
}

type analyticsResponse struct {
	Message   string            `json:"message,omitempty"`
	Analytics *domain.Analytics `json:"analytics"`
}
