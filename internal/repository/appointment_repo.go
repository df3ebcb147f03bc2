package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindwell/internal/model"
)

// AppointmentRepo handles MongoDB operations for appointments,
// counsellor availability slots and appointment notes
type AppointmentRepo interface {
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	GetByCounsellorID(ctx context.Context, counsellorID string, limit int64) ([]*model.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error
	Reschedule(ctx context.Context, id, date, timeOfDay string) error

	UpsertSlot(ctx context.Context, slot *model.AvailabilitySlot) error
	SetSlotActive(ctx context.Context, counsellorID, dateKey, timeOfDay string, active bool) error
	GetSlots(ctx context.Context, counsellorID, dateKey string) ([]*model.AvailabilitySlot, error)

	GetNote(ctx context.Context, appointmentID, counsellorID string) (*model.AppointmentNote, error)
	PutNote(ctx context.Context, note *model.AppointmentNote) error
}

type appointmentRepo struct {
	appointments *mongo.Collection
	availability *mongo.Collection
	notes        *mongo.Collection
}

// NewAppointmentRepo creates a new appointment repository
func NewAppointmentRepo(db *mongo.Database) AppointmentRepo {
	return &appointmentRepo{
		appointments: db.Collection("appointments"),
		availability: db.Collection("availability"),
		notes:        db.Collection("appointment_notes"),
	}
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var appt model.Appointment
	err = r.appointments.FindOne(ctx, bson.M{"_id": oid}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	appt.ID = id
	return &appt, nil
}

// GetByCounsellorID fetches with a single-field filter only; callers sort
// by date/time in memory to avoid needing a composite index.
func (r *appointmentRepo) GetByCounsellorID(ctx context.Context, counsellorID string, limit int64) ([]*model.Appointment, error) {
	opts := options.Find().SetLimit(limit)

	cursor, err := r.appointments.Find(ctx, bson.M{"counsellor_id": counsellorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []*model.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *appointmentRepo) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	_, err = r.appointments.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *appointmentRepo) Reschedule(ctx context.Context, id, date, timeOfDay string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"appointment_date": date,
		"appointment_time": timeOfDay,
		"updated_at":       time.Now(),
	}}
	_, err = r.appointments.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *appointmentRepo) UpsertSlot(ctx context.Context, slot *model.AvailabilitySlot) error {
	filter := bson.M{
		"counsellor_id": slot.CounsellorID,
		"date_key":      slot.DateKey,
		"time":          slot.Time,
	}
	update := bson.M{"$set": bson.M{
		"counsellor_id": slot.CounsellorID,
		"date_key":      slot.DateKey,
		"time":          slot.Time,
		"booked":        slot.Booked,
		"active":        slot.Active,
		"updated_at":    time.Now(),
	}}

	opts := options.Update().SetUpsert(true)
	_, err := r.availability.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *appointmentRepo) SetSlotActive(ctx context.Context, counsellorID, dateKey, timeOfDay string, active bool) error {
	filter := bson.M{
		"counsellor_id": counsellorID,
		"date_key":      dateKey,
		"time":          timeOfDay,
	}
	update := bson.M{
		"$set": bson.M{"active": active, "updated_at": time.Now()},
		"$setOnInsert": bson.M{
			"counsellor_id": counsellorID,
			"date_key":      dateKey,
			"time":          timeOfDay,
			"booked":        false,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.availability.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *appointmentRepo) GetSlots(ctx context.Context, counsellorID, dateKey string) ([]*model.AvailabilitySlot, error) {
	cursor, err := r.availability.Find(ctx, bson.M{"counsellor_id": counsellorID, "date_key": dateKey})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []*model.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *appointmentRepo) GetNote(ctx context.Context, appointmentID, counsellorID string) (*model.AppointmentNote, error) {
	filter := bson.M{"appointment_id": appointmentID, "counsellor_id": counsellorID}

	var note model.AppointmentNote
	err := r.notes.FindOne(ctx, filter).Decode(&note)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *appointmentRepo) PutNote(ctx context.Context, note *model.AppointmentNote) error {
	filter := bson.M{"appointment_id": note.AppointmentID, "counsellor_id": note.CounsellorID}
	update := bson.M{"$set": bson.M{
		"appointment_id": note.AppointmentID,
		"counsellor_id":  note.CounsellorID,
		"text":           note.Text,
		"updated_at":     time.Now(),
	}}

	opts := options.Update().SetUpsert(true)
	_, err := r.notes.UpdateOne(ctx, filter, update, opts)
	return err
}
