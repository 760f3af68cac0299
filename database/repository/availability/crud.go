// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"campuscare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAvailabilityRepo) Create(ctx context.Context, w *models.AvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, w); err != nil {
		return fmt.Errorf("failed to create availability window: %w", err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete availability window %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAvailabilityRepo) ListByCounselor(ctx context.Context, counselorID string) ([]models.AvailabilityWindow, error) {
	return r.list(ctx, bson.M{"counselor_id": counselorID})
}

func (r *mongoAvailabilityRepo) ListByCounselorAndWeekday(ctx context.Context, counselorID, weekday string) ([]models.AvailabilityWindow, error) {
	return r.list(ctx, bson.M{"counselor_id": counselorID, "weekday": weekday})
}

func (r *mongoAvailabilityRepo) list(ctx context.Context, filter bson.M) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability windows: %w", err)
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("failed to decode availability windows: %w", err)
	}
	return windows, nil
}

// ListWeekdays returns the distinct weekdays a counselor has configured,
// sorted alphabetically.
func (r *mongoAvailabilityRepo) ListWeekdays(ctx context.Context, counselorID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	raw, err := r.coll.Distinct(ctx, "weekday", bson.M{"counselor_id": counselorID})
	if err != nil {
		return nil, fmt.Errorf("failed to list weekdays for counselor %s: %w", counselorID, err)
	}

	days := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			days = append(days, s)
		}
	}
	sort.Strings(days)
	return days, nil
}
