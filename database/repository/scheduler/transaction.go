package schedulerRepo

import (
	"context"
	"errors"
	"fmt"

	"prescripto/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// slotField is the dotted path of a day's time-label set inside the doctor
// document, e.g. "slotsBooked.2024-05-01".
func slotField(date string) string {
	return "slotsBooked." + date
}

func (repo *MongoSchedulerRepo) ReserveSlotTxn(
	ctx context.Context,
	doctorID, date, slotTime string,
	appt *models.Appointment,
) error {
	txnFn := func(sc mongo.SessionContext) error {
		// Conditional write: the $ne arm makes the store apply the update
		// only if the time label is still absent from the day's set. A
		// concurrent reservation that committed first leaves MatchedCount
		// at zero here.
		filter := bson.M{
			"id":            doctorID,
			"deleted":       bson.M{"$ne": true},
			slotField(date): bson.M{"$ne": slotTime},
		}
		update := bson.M{"$addToSet": bson.M{slotField(date): slotTime}}

		res, err := repo.doctorColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("conditional slot update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			// Either the doctor is missing or the slot is taken;
			// disambiguate inside the same transaction.
			n, err := repo.doctorColl.CountDocuments(sc, bson.M{
				"id":      doctorID,
				"deleted": bson.M{"$ne": true},
			})
			if err != nil {
				return fmt.Errorf("doctor lookup failed: %w", err)
			}
			if n == 0 {
				return ErrDoctorNotFound
			}
			return ErrSlotTaken
		}

		if _, err := repo.apptColl.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := repo.withTransaction(ctx, txnFn); err != nil {
		if errors.Is(err, ErrSlotTaken) || errors.Is(err, ErrDoctorNotFound) {
			return err
		}
		return fmt.Errorf("reservation transaction failed: %w", err)
	}
	return nil
}

func (repo *MongoSchedulerRepo) ReleaseSlotTxn(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {
	var appt models.Appointment

	txnFn := func(sc mongo.SessionContext) error {
		// Conditional flip: only an active appointment transitions to
		// cancelled. Matching nothing means the id is unknown or the
		// appointment was already cancelled.
		err := repo.apptColl.FindOneAndUpdate(sc,
			bson.M{"id": appointmentID, "cancelled": false},
			bson.M{"$set": bson.M{"cancelled": true}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&appt)

		if errors.Is(err, mongo.ErrNoDocuments) {
			ferr := repo.apptColl.FindOne(sc, bson.M{"id": appointmentID}).Decode(&appt)
			if errors.Is(ferr, mongo.ErrNoDocuments) {
				return ErrAppointmentNotFound
			}
			if ferr != nil {
				return fmt.Errorf("appointment lookup failed: %w", ferr)
			}
			// Already cancelled: idempotent success, calendar untouched.
			return nil
		}
		if err != nil {
			return fmt.Errorf("cancel appointment failed: %w", err)
		}

		// Remove the calendar entry. $pull matching nothing is fine: a
		// prior partial failure or external repair may have cleared it.
		_, err = repo.doctorColl.UpdateOne(sc,
			bson.M{"id": appt.DoctorID},
			bson.M{"$pull": bson.M{slotField(appt.Date): appt.Time}},
		)
		if err != nil {
			return fmt.Errorf("release slot update failed: %w", err)
		}
		return nil
	}

	if err := repo.withTransaction(ctx, txnFn); err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("release transaction failed: %w", err)
	}
	return &appt, nil
}
