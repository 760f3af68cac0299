package notification

import (
	"context"
	"errors"
	"strconv"
	"time"

	"campuscare/models"
	"campuscare/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Create persists the notification, then announces it to every recipient.
func (s *DefaultNotificationService) Create(ctx context.Context, n *models.Notification) error {
	if err := s.Repo.Create(ctx, n); err != nil {
		return err
	}
	for _, uid := range n.Recipients() {
		s.invalidateUnread(ctx, uid)
		s.deliver(uid, models.Event{Type: models.EventNotificationNew, Data: n})
	}
	return nil
}

func (s *DefaultNotificationService) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// MarkRead flips the read flag and announces the change.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	n, err := s.Repo.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, uid := range n.Recipients() {
		s.invalidateUnread(ctx, uid)
		s.deliver(uid, models.Event{Type: models.EventNotificationRead, ID: n.ID})
	}
	return n, nil
}

// Delete removes the notification and announces the removal to the
// recipients it used to address.
func (s *DefaultNotificationService) Delete(ctx context.Context, id string) error {
	n, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	for _, uid := range n.Recipients() {
		s.invalidateUnread(ctx, uid)
		s.deliver(uid, models.Event{Type: models.EventNotificationDeleted, ID: id})
	}
	return nil
}

// ClearForUser drops every notification addressed to the user.
func (s *DefaultNotificationService) ClearForUser(ctx context.Context, userID string) error {
	if _, err := s.Repo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	s.invalidateUnread(ctx, userID)
	s.deliver(userID, models.Event{Type: models.EventNotificationsCleared})
	return nil
}

// UnreadCount returns the user's unread total, preferring the Redis cache
// and falling back to Mongo on a miss or cache failure.
func (s *DefaultNotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, utils.UnreadCountCachePrefix+userID).Result()
		if err == nil {
			if count, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
				return count, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			utils.GetLogger().Warn("unread-count cache read failed",
				zap.String("userID", userID), zap.Error(err))
		}
	}

	count, err := s.Repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, utils.UnreadCountCachePrefix+userID,
			strconv.FormatInt(count, 10), utils.UnreadCountCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("unread-count cache write failed",
				zap.String("userID", userID), zap.Error(err))
		}
	}
	return count, nil
}

func (s *DefaultNotificationService) invalidateUnread(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(cctx, utils.UnreadCountCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("unread-count cache invalidation failed",
			zap.String("userID", userID), zap.Error(err))
	}
}

func (s *DefaultNotificationService) deliver(userID string, ev models.Event) {
	if s.Hub == nil {
		return
	}
	s.Hub.Deliver(userID, ev)
}

// IsNotFound reports whether err means the referenced notification is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
