package notification

import (
	"context"

	notificationRepo "campuscare/database/repository/notification"
	"campuscare/models"

	"github.com/go-redis/redis/v8"
)

// Deliverer is the hub-facing half the service needs: best-effort fan-out
// to every live session of one user.
type Deliverer interface {
	Deliver(userID string, ev models.Event)
}

// NotificationService manages persisted inbox entries and pushes their
// lifecycle over the real-time channel. Every mutation completes its
// database write before any Deliver call.
type NotificationService interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) (*models.Notification, error)
	Delete(ctx context.Context, id string) error
	ClearForUser(ctx context.Context, userID string) error
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

// DefaultNotificationService is the production implementation. Cache may
// be nil, in which case unread counts always hit the repository.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Hub   Deliverer
	Cache *redis.Client
}
