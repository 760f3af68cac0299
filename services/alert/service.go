// Package alert raises student alerts and fans them out to every admin
// and counselor account.
package alert

import (
	"context"
	"errors"
	"fmt"

	alertRepo "campuscare/database/repository/alert"
	userRepo "campuscare/database/repository/user"
	"campuscare/models"
	"campuscare/services/notification"

	"go.mongodb.org/mongo-driver/mongo"
)

// maxAlertPreview caps the alert text quoted inside notification titles.
const maxAlertPreview = 150

// StudentNotFoundError rejects an alert for an unknown student.
type StudentNotFoundError struct {
	StudentID string
}

func (e *StudentNotFoundError) Error() string {
	return fmt.Sprintf("student %s not found", e.StudentID)
}

// AlertService creates and lists alerts.
type AlertService interface {
	Create(ctx context.Context, a *models.Alert) error
	ListAll(ctx context.Context) ([]models.Alert, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Alert, error)
}

// DefaultAlertService is the production implementation.
type DefaultAlertService struct {
	Repo          alertRepo.AlertRepository
	Users         userRepo.UserRepository
	Notifications notification.NotificationService
	Dispatcher    *notification.Dispatcher
}

// Create validates the subject, persists the alert, then per recipient
// persists an inbox entry (which fans out as notification_new) followed by
// the dedicated alert_new push. Recipients are every admin and counselor
// except the alert's own subject; persistence always completes before the
// matching deliver.
func (s *DefaultAlertService) Create(ctx context.Context, a *models.Alert) error {
	student, err := s.Users.GetByID(ctx, a.StudentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &StudentNotFoundError{StudentID: a.StudentID}
		}
		return err
	}

	if err := s.Repo.Create(ctx, a); err != nil {
		return err
	}

	recipients, err := s.Users.ListByRoles(ctx, models.RoleAdmin, models.RoleCounselor)
	if err != nil {
		return err
	}

	title := alertTitle(*a, *student)
	for _, recipient := range recipients {
		if recipient.ID == a.StudentID {
			continue
		}
		// Addressed to the staff recipient only; the subject is not
		// notified about their own alert.
		n := &models.Notification{
			CounselorID: recipient.ID,
			Title:       title,
		}
		if err := s.Notifications.Create(ctx, n); err != nil {
			return err
		}
		s.Dispatcher.AlertRaised(recipient.ID, *a, *student)
	}
	return nil
}

func (s *DefaultAlertService) ListAll(ctx context.Context) ([]models.Alert, error) {
	return s.Repo.ListAll(ctx)
}

func (s *DefaultAlertService) ListByStudent(ctx context.Context, studentID string) ([]models.Alert, error) {
	return s.Repo.ListByStudent(ctx, studentID)
}

func alertTitle(a models.Alert, student models.User) string {
	text := a.Text
	if len(text) > maxAlertPreview {
		text = text[:maxAlertPreview] + "..."
	}
	return fmt.Sprintf("ALERT %s: %s (%s) at %s said: '%s'",
		a.Severity, student.DisplayName(), student.Email,
		a.CreatedAt.Format("2006-01-02 15:04:05"), text)
}
