package engagement

import (
	"context"

	"github.com/arvebo/backend/internal/domain/engagement"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ActivityService records and reads an estate's activity history.
// Entries are append-only.
type ActivityService struct {
	activityRepo engagement.ActivityLogRepository
	logger       *zap.Logger
}

// NewActivityService creates a new ActivityService
func NewActivityService(activityRepo engagement.ActivityLogRepository, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Record appends an entry to the estate's activity history.
// Logging failures must not fail the mutation they describe, so the
// error is logged and swallowed.
func (s *ActivityService) Record(ctx context.Context, input RecordActivityInput) {
	entry, err := engagement.NewActivityLog(input.EstateID, input.ActorID, input.Action, input.EntityType, input.EntityID, input.Detail)
	if err != nil {
		s.logger.Warn("Failed to build activity entry", zap.Error(err))
		return
	}

	if err := s.activityRepo.Save(ctx, entry); err != nil {
		s.logger.Warn("Failed to save activity entry",
			zap.String("estate_id", input.EstateID.String()),
			zap.String("action", input.Action),
			zap.Error(err))
	}
}

// List returns an estate's activity history, newest first
func (s *ActivityService) List(ctx context.Context, estateID uuid.UUID, filter shared.Filter) (*ActivityListResult, error) {
	entries, total, err := s.activityRepo.FindAllForEstate(ctx, estateID, filter)
	if err != nil {
		s.logger.Error("Failed to list activity entries", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list activity")
	}

	infos := make([]ActivityInfo, 0, len(entries))
	for i := range entries {
		infos = append(infos, activityInfoFromDomain(&entries[i]))
	}
	return &ActivityListResult{Entries: infos, Total: total}, nil
}
