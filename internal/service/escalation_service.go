package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"mindwell/internal/lexicon"
	"mindwell/internal/model"
	"mindwell/internal/repository"
)

// EscalationService logs escalations and hands back crisis resources
type EscalationService struct {
	repo        repository.EscalationRepo
	broadcaster Broadcaster
}

// NewEscalationService creates a new escalation service
func NewEscalationService(repo repository.EscalationRepo) *EscalationService {
	return &EscalationService{repo: repo}
}

// SetBroadcaster sets the broadcaster for WebSocket alerts
func (s *EscalationService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Raise logs an escalation and returns the fixed crisis resources.
// Resources are returned even when persistence fails; getting help to
// the user takes precedence over the audit trail.
func (s *EscalationService) Raise(ctx context.Context, userID string, level model.EscalationLevel, message string) *model.CrisisResources {
	rec := &model.EscalationRecord{
		UserID:          userID,
		EscalationLevel: level,
		Message:         message,
		Status:          "pending",
		Timestamp:       time.Now(),
	}
	if _, err := s.repo.Create(ctx, rec); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to save escalation")
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastAlert("escalation_raised", map[string]interface{}{
			"user_id":          userID,
			"escalation_level": level,
			"timestamp":        rec.Timestamp,
		})
	}

	resources := lexicon.Resources
	return &resources
}

// Pending lists escalations awaiting counsellor acknowledgement
func (s *EscalationService) Pending(ctx context.Context) ([]*model.EscalationRecord, error) {
	return s.repo.GetByStatus(ctx, "pending")
}

// Acknowledge marks an escalation as picked up by a counsellor
func (s *EscalationService) Acknowledge(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, id, "acknowledged")
}
