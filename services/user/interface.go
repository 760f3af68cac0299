package user

import (
	"context"

	userRepo "campuscare/database/repository/user"
	"campuscare/models"
)

// CreateInput carries the fields of a new account.
type CreateInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

// UserService manages platform accounts. The booking core only consumes
// already-authenticated user ids; this service exists to store the
// role-tagged records the rest of the system reads.
type UserService interface {
	Create(ctx context.Context, in CreateInput) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) error

	Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
	SetPassword(ctx context.Context, id, newPassword string) error
	ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error
	Authenticate(ctx context.Context, email, password string) (*models.User, error)

	SeedDefaults(ctx context.Context) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
