package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"mindwell/internal/model"
	"mindwell/internal/repository"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotYourAppointment  = errors.New("appointment belongs to another counsellor")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

// AppointmentService manages counsellor appointments and availability
type AppointmentService struct {
	repo repository.AppointmentRepo
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(repo repository.AppointmentRepo) *AppointmentService {
	return &AppointmentService{repo: repo}
}

// List returns a counsellor's appointments ordered by date then time
func (s *AppointmentService) List(ctx context.Context, counsellorID string, limit int64) ([]*model.Appointment, error) {
	appts, err := s.repo.GetByCounsellorID(ctx, counsellorID, limit)
	if err != nil {
		return nil, err
	}

	sort.Slice(appts, func(i, j int) bool {
		if appts[i].AppointmentDate != appts[j].AppointmentDate {
			return appts[i].AppointmentDate < appts[j].AppointmentDate
		}
		return appts[i].AppointmentTime < appts[j].AppointmentTime
	})
	return appts, nil
}

// UpdateStatus changes an appointment's status after ownership checks
func (s *AppointmentService) UpdateStatus(ctx context.Context, counsellorID, appointmentID string, status model.AppointmentStatus) error {
	switch status {
	case model.AppointmentPending, model.AppointmentApproved, model.AppointmentConfirmed, model.AppointmentCancelled:
	default:
		return ErrInvalidStatus
	}

	if err := s.ownershipCheck(ctx, counsellorID, appointmentID); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, appointmentID, status)
}

// Reschedule moves an appointment to a new date and time
func (s *AppointmentService) Reschedule(ctx context.Context, counsellorID, appointmentID, date, timeOfDay string) error {
	if err := s.ownershipCheck(ctx, counsellorID, appointmentID); err != nil {
		return err
	}
	return s.repo.Reschedule(ctx, appointmentID, date, timeOfDay)
}

// UpsertSlot creates or refreshes an available slot
func (s *AppointmentService) UpsertSlot(ctx context.Context, counsellorID, dateKey, timeOfDay string) error {
	return s.repo.UpsertSlot(ctx, &model.AvailabilitySlot{
		CounsellorID: counsellorID,
		DateKey:      dateKey,
		Time:         normalizeTime(timeOfDay),
		Booked:       false,
		Active:       true,
	})
}

// ToggleSlot activates or deactivates a slot
func (s *AppointmentService) ToggleSlot(ctx context.Context, counsellorID, dateKey, timeOfDay string, active bool) error {
	return s.repo.SetSlotActive(ctx, counsellorID, dateKey, normalizeTime(timeOfDay), active)
}

// Slots lists a counsellor's slots for a day, sorted by time
func (s *AppointmentService) Slots(ctx context.Context, counsellorID, dateKey string) ([]*model.AvailabilitySlot, error) {
	slots, err := s.repo.GetSlots(ctx, counsellorID, dateKey)
	if err != nil {
		return nil, err
	}

	for _, slot := range slots {
		slot.Time = normalizeTime(slot.Time)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Time < slots[j].Time })
	return slots, nil
}

// GetNote fetches a counsellor's note for an appointment, nil if none
func (s *AppointmentService) GetNote(ctx context.Context, appointmentID, counsellorID string) (*model.AppointmentNote, error) {
	return s.repo.GetNote(ctx, appointmentID, counsellorID)
}

// PutNote creates or replaces a counsellor's note for an appointment
func (s *AppointmentService) PutNote(ctx context.Context, appointmentID, counsellorID, text string) error {
	return s.repo.PutNote(ctx, &model.AppointmentNote{
		AppointmentID: appointmentID,
		CounsellorID:  counsellorID,
		Text:          text,
	})
}

func (s *AppointmentService) ownershipCheck(ctx context.Context, counsellorID, appointmentID string) error {
	appt, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt == nil {
		return ErrAppointmentNotFound
	}
	if appt.CounsellorID != counsellorID {
		return ErrNotYourAppointment
	}
	return nil
}

// normalizeTime accepts "14.30" style input and stores "14:30"
func normalizeTime(t string) string {
	return strings.ReplaceAll(strings.TrimSpace(t), ".", ":")
}
