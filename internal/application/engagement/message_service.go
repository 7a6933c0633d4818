// Package engagement provides application services for messages,
// notifications, activity history and advice articles.
package engagement

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/engagement"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MessageService manages an estate's message board
type MessageService struct {
	messageRepo engagement.MessageRepository
	logger      *zap.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo engagement.MessageRepository, logger *zap.Logger) *MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Post adds a message to the estate's board
func (s *MessageService) Post(ctx context.Context, input PostMessageInput) (*MessageInfo, error) {
	message, err := engagement.NewMessage(input.EstateID, input.AuthorID, input.Body)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.Save(ctx, message); err != nil {
		s.logger.Error("Failed to save message", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to post message")
	}

	info := messageInfoFromDomain(message)
	return &info, nil
}

// List returns the messages of an estate
func (s *MessageService) List(ctx context.Context, estateID uuid.UUID, filter shared.Filter) (*MessageListResult, error) {
	messages, total, err := s.messageRepo.FindAllForEstate(ctx, estateID, filter)
	if err != nil {
		s.logger.Error("Failed to list messages", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list messages")
	}

	infos := make([]MessageInfo, 0, len(messages))
	for i := range messages {
		infos = append(infos, messageInfoFromDomain(&messages[i]))
	}
	return &MessageListResult{Messages: infos, Total: total}, nil
}

// Edit replaces a message's body. Only the author may edit.
func (s *MessageService) Edit(ctx context.Context, input EditMessageInput) (*MessageInfo, error) {
	message, err := s.loadMessage(ctx, input.EstateID, input.MessageID)
	if err != nil {
		return nil, err
	}

	if err := message.Edit(input.EditorID, input.Body); err != nil {
		return nil, err
	}

	if err := s.messageRepo.Save(ctx, message); err != nil {
		s.logger.Error("Failed to save edited message", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to edit message")
	}

	info := messageInfoFromDomain(message)
	return &info, nil
}

// Delete removes a message. Only the author may delete.
func (s *MessageService) Delete(ctx context.Context, input DeleteMessageInput) error {
	message, err := s.loadMessage(ctx, input.EstateID, input.MessageID)
	if err != nil {
		return err
	}

	if message.AuthorID != input.ActorID {
		return shared.ErrForbidden
	}

	if err := s.messageRepo.Delete(ctx, message.ID); err != nil {
		s.logger.Error("Failed to delete message", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete message")
	}
	return nil
}

func (s *MessageService) loadMessage(ctx context.Context, estateID, messageID uuid.UUID) (*engagement.Message, error) {
	message, err := s.messageRepo.FindByIDForEstate(ctx, estateID, messageID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load message", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load message")
	}
	return message, nil
}
