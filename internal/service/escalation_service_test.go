package service

import (
	"context"
	"errors"
	"testing"

	"mindwell/internal/model"
)

// memEscalationRepo is an in-memory EscalationRepo
type memEscalationRepo struct {
	records []*model.EscalationRecord
	fail    bool
}

func (r *memEscalationRepo) Create(ctx context.Context, rec *model.EscalationRecord) (string, error) {
	if r.fail {
		return "", errors.New("storage down")
	}
	rec.ID = "esc_1"
	r.records = append(r.records, rec)
	return rec.ID, nil
}

func (r *memEscalationRepo) GetByStatus(ctx context.Context, status string) ([]*model.EscalationRecord, error) {
	out := []*model.EscalationRecord{}
	for _, rec := range r.records {
		if rec.Status == status {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memEscalationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for _, rec := range r.records {
		if rec.ID == id {
			rec.Status = status
			return nil
		}
	}
	return errors.New("not found")
}

func TestRaiseReturnsResourcesAndBroadcasts(t *testing.T) {
	repo := &memEscalationRepo{}
	broadcaster := &recordingBroadcaster{}
	svc := NewEscalationService(repo)
	svc.SetBroadcaster(broadcaster)

	resources := svc.Raise(context.Background(), "user_1", model.EscalationHigh, "needs help")

	if resources == nil || len(resources.EmergencyContacts) == 0 {
		t.Fatal("expected crisis resources")
	}
	if len(repo.records) != 1 || repo.records[0].Status != "pending" {
		t.Errorf("escalation not persisted as pending: %+v", repo.records)
	}
	if len(broadcaster.types) != 1 || broadcaster.types[0] != "escalation_raised" {
		t.Errorf("expected escalation_raised alert, got %v", broadcaster.types)
	}
}

func TestRaiseReturnsResourcesDespiteStorageFailure(t *testing.T) {
	repo := &memEscalationRepo{fail: true}
	svc := NewEscalationService(repo)

	resources := svc.Raise(context.Background(), "user_1", model.EscalationCritical, "urgent")

	if resources == nil || len(resources.ImmediateActions) == 0 {
		t.Fatal("resources must be returned even when persistence fails")
	}
}

func TestPendingAndAcknowledge(t *testing.T) {
	repo := &memEscalationRepo{}
	svc := NewEscalationService(repo)
	ctx := context.Background()

	svc.Raise(ctx, "user_1", model.EscalationHigh, "first")

	pending, err := svc.Pending(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending escalation, got %d", len(pending))
	}

	if err := svc.Acknowledge(ctx, pending[0].ID); err != nil {
		t.Fatalf("Acknowledge failed: %v", err)
	}

	pending, err = svc.Pending(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 0 {
		t.Errorf("expected no pending escalations, got %d", len(pending))
	}
}
