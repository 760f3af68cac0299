// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"campuscare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// dayBounds returns the UTC [start, end) of the calendar day containing date.
func dayBounds(date time.Time) (time.Time, time.Time) {
	d := date.UTC()
	dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return dayStart, dayStart.AddDate(0, 0, 1)
}

func (r *mongoBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *mongoBookingRepo) ListByCounselor(ctx context.Context, counselorID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"counselor_id": counselorID})
}

func (r *mongoBookingRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"student_id": studentID})
}

// ListByUserInRange returns bookings where the user is either participant
// and the interval falls inside [from, to] inclusive.
func (r *mongoBookingRepo) ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"$or":   []bson.M{{"student_id": userID}, {"counselor_id": userID}},
		"start": bson.M{"$gte": from.UTC()},
		"end":   bson.M{"$lte": to.UTC()},
	}
	return r.list(ctx, filter)
}

// ListActiveByCounselorOnDate returns the counselor's active bookings whose
// start instant falls on the given UTC calendar day. A booking spanning
// midnight is only reported on its start date.
func (r *mongoBookingRepo) ListActiveByCounselorOnDate(ctx context.Context, counselorID string, date time.Time) ([]models.Booking, error) {
	dayStart, dayEnd := dayBounds(date)
	filter := bson.M{
		"counselor_id": counselorID,
		"cancelled_at": bson.M{"$exists": false},
		"start":        bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	return r.list(ctx, filter)
}

// ListActiveOverlapping returns active bookings overlapping [start, end)
// for the counselor, using the half-open interval test.
func (r *mongoBookingRepo) ListActiveOverlapping(ctx context.Context, counselorID string, start, end time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"counselor_id": counselorID,
		"cancelled_at": bson.M{"$exists": false},
		"start":        bson.M{"$lt": end.UTC()},
		"end":          bson.M{"$gt": start.UTC()},
	}
	return r.list(ctx, filter)
}

func (r *mongoBookingRepo) CountActiveOnDate(ctx context.Context, counselorID string, date time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dayStart, dayEnd := dayBounds(date)
	filter := bson.M{
		"counselor_id": counselorID,
		"cancelled_at": bson.M{"$exists": false},
		"start":        bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings for counselor %s: %w", counselorID, err)
	}
	return count, nil
}

func (r *mongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
