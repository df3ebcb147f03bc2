package model

import "time"

// AppointmentStatus is the lifecycle state of a booking
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentApproved  AppointmentStatus = "approved"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a counselling session booked by a user
type Appointment struct {
	ID              string            `json:"id" bson:"_id,omitempty"`
	UserID          string            `json:"user_id" bson:"user_id"`
	CounsellorID    string            `json:"counsellor_id" bson:"counsellor_id"`
	AppointmentDate string            `json:"appointment_date" bson:"appointment_date"` // YYYY-MM-DD
	AppointmentTime string            `json:"appointment_time" bson:"appointment_time"` // HH:mm
	Status          AppointmentStatus `json:"status" bson:"status"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" bson:"updated_at"`
}

// AvailabilitySlot is a bookable time slot for a counsellor on a given day
type AvailabilitySlot struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	CounsellorID string    `json:"counsellor_id" bson:"counsellor_id"`
	DateKey      string    `json:"date_key" bson:"date_key"` // YYYY-MM-DD
	Time         string    `json:"time" bson:"time"`         // HH:mm
	Booked       bool      `json:"booked" bson:"booked"`
	Active       bool      `json:"active" bson:"active"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// AppointmentNote is a counsellor's private note on an appointment
type AppointmentNote struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	AppointmentID string    `json:"appointment_id" bson:"appointment_id"`
	CounsellorID  string    `json:"counsellor_id" bson:"counsellor_id"`
	Text          string    `json:"text" bson:"text"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// StatusUpdateRequest changes an appointment's status
type StatusUpdateRequest struct {
	Status AppointmentStatus `json:"status"`
}

// RescheduleRequest moves an appointment to a new date and time
type RescheduleRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// SlotRequest adds or toggles an availability slot
type SlotRequest struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Active *bool  `json:"active,omitempty"`
}

// NoteRequest sets the counsellor's note text for an appointment
type NoteRequest struct {
	Text string `json:"text"`
}
