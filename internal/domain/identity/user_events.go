package identity

import (
	"github.com/google/uuid"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
)

// UserCreatedEvent is raised when a new user registers
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// EventType returns the event type name
func (e *UserCreatedEvent) EventType() string {
	return "UserCreated"
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("UserCreated", "User", user.ID),
		UserID:          user.ID,
		Email:           user.Email,
	}
}
