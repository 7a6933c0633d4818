package estate

import (
	"strings"
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EstateStatus represents the settlement status of an estate
type EstateStatus string

const (
	EstateStatusActive   EstateStatus = "active"   // Settlement in progress
	EstateStatusSettled  EstateStatus = "settled"  // Settlement completed
	EstateStatusArchived EstateStatus = "archived" // No longer worked on
)

// IsValid checks if the status is a known value
func (s EstateStatus) IsValid() bool {
	switch s {
	case EstateStatusActive, EstateStatusSettled, EstateStatusArchived:
		return true
	}
	return false
}

// Estate represents the estate of a deceased person under settlement.
// It is the aggregate root that all tasks, documents, assets, liabilities
// and transactions are scoped to.
type Estate struct {
	shared.BaseAggregateRoot
	Name         string
	DeceasedName string
	DateOfDeath  *time.Time
	Description  string
	Status       EstateStatus
	CreatedBy    uuid.UUID
}

// NewEstate creates a new estate in active status
func NewEstate(name, deceasedName string, dateOfDeath *time.Time, createdBy uuid.UUID) (*Estate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Estate name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Estate name cannot exceed 200 characters")
	}
	deceasedName = strings.TrimSpace(deceasedName)
	if deceasedName == "" {
		return nil, shared.NewDomainError("INVALID_DECEASED_NAME", "Deceased name cannot be empty")
	}
	if len(deceasedName) > 200 {
		return nil, shared.NewDomainError("INVALID_DECEASED_NAME", "Deceased name cannot exceed 200 characters")
	}
	if createdBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Creator cannot be empty")
	}
	if dateOfDeath != nil && dateOfDeath.After(time.Now()) {
		return nil, shared.NewDomainError("INVALID_DATE_OF_DEATH", "Date of death cannot be in the future")
	}

	e := &Estate{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		DeceasedName:      deceasedName,
		DateOfDeath:       dateOfDeath,
		Status:            EstateStatusActive,
		CreatedBy:         createdBy,
	}

	e.AddDomainEvent(NewEstateCreatedEvent(e))

	return e, nil
}

// Update updates the estate's editable fields
func (e *Estate) Update(name, deceasedName, description string, dateOfDeath *time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Estate name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Estate name cannot exceed 200 characters")
	}
	if dateOfDeath != nil && dateOfDeath.After(time.Now()) {
		return shared.NewDomainError("INVALID_DATE_OF_DEATH", "Date of death cannot be in the future")
	}

	e.Name = name
	e.DeceasedName = strings.TrimSpace(deceasedName)
	e.Description = description
	e.DateOfDeath = dateOfDeath
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// MarkSettled marks the estate as settled
func (e *Estate) MarkSettled() error {
	if e.Status != EstateStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active estates can be settled")
	}

	e.Status = EstateStatusSettled
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewEstateSettledEvent(e))

	return nil
}

// Archive archives the estate
func (e *Estate) Archive() error {
	if e.Status == EstateStatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Estate is already archived")
	}

	e.Status = EstateStatusArchived
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// Reopen returns a settled or archived estate to active status
func (e *Estate) Reopen() error {
	if e.Status == EstateStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Estate is already active")
	}

	e.Status = EstateStatusActive
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// IsActive returns true if settlement is in progress
func (e *Estate) IsActive() bool {
	return e.Status == EstateStatusActive
}
