package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

type MessageService struct {
	repo ports.MessageRepository
	log  zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, log zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, log: log}
}

// Submit stores a contact-form message as unread.
func (s *MessageService) Submit(ctx context.Context, in ports.MessageInput) (*domain.Message, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Message) == "" {
		return nil, domain.InvalidInput("All fields are required")
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Message{
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("message_id", created.ID).Msg("contact message received")
	return created, nil
}

func (s *MessageService) List(ctx context.Context) ([]*domain.Message, error) {
	return s.repo.List(ctx)
}

func (s *MessageService) MarkRead(ctx context.Context, id string, read bool) (*domain.Message, error) {
	return s.repo.SetRead(ctx, id, read)
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
