package engagement

import (
	"strings"
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Message is a post on an estate's message board
type Message struct {
	shared.EstateAggregateRoot
	AuthorID uuid.UUID
	Body     string
}

// NewMessage creates a new message
func NewMessage(estateID, authorID uuid.UUID, body string) (*Message, error) {
	if authorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Author cannot be empty")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, shared.NewDomainError("INVALID_BODY", "Message body cannot be empty")
	}
	if len(body) > 4000 {
		return nil, shared.NewDomainError("INVALID_BODY", "Message body cannot exceed 4000 characters")
	}

	return &Message{
		EstateAggregateRoot: shared.NewEstateAggregateRootWithCreator(estateID, authorID),
		AuthorID:            authorID,
		Body:                body,
	}, nil
}

// Edit replaces the message body. Only the author may edit.
func (m *Message) Edit(editorID uuid.UUID, body string) error {
	if editorID != m.AuthorID {
		return shared.ErrForbidden
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return shared.NewDomainError("INVALID_BODY", "Message body cannot be empty")
	}
	if len(body) > 4000 {
		return shared.NewDomainError("INVALID_BODY", "Message body cannot exceed 4000 characters")
	}

	m.Body = body
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}
