// File: database/repository/alert/interface.go
package alertRepo

import (
	"context"
	"fmt"

	"campuscare/database"
	"campuscare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AlertRepository holds raised alerts.
type AlertRepository interface {
	Create(ctx context.Context, a *models.Alert) error
	ListAll(ctx context.Context) ([]models.Alert, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Alert, error)
}

type mongoAlertRepo struct {
	coll *mongo.Collection
}

// NewMongoAlertRepo constructs a new MongoDB AlertRepository.
func NewMongoAlertRepo() AlertRepository {
	repo := &mongoAlertRepo{
		coll: database.DB().Collection("alerts"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
