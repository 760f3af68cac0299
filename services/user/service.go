package user

import (
	"context"
	"errors"
	"fmt"

	"campuscare/models"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Create stores a new account with a bcrypt-hashed password.
func (s *DefaultUserService) Create(ctx context.Context, in CreateInput) (*models.User, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) List(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListAll(ctx)
}

func (s *DefaultUserService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// Update applies a whitelisted partial update. Only the fields enumerated
// on models.UserUpdate can change; a password change goes through the
// usual hashing.
func (s *DefaultUserService) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Password != nil {
		hash, err := hashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword overwrites a user's password without checking the old one.
func (s *DefaultUserService) SetPassword(ctx context.Context, id, newPassword string) error {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.Repo.Update(ctx, u)
}

// ChangePassword verifies the current password before replacing it.
func (s *DefaultUserService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)) != nil {
		return &InvalidCredentialsError{}
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.Repo.Update(ctx, u)
}

// Authenticate checks an email/password pair and returns the account.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &InvalidCredentialsError{}
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, &InvalidCredentialsError{}
	}
	return u, nil
}

// SeedDefaults creates one account per role when it does not exist yet,
// mirroring the bootstrap data of a fresh install.
func (s *DefaultUserService) SeedDefaults(ctx context.Context) ([]models.User, error) {
	defaults := []CreateInput{
		{FirstName: "admin", LastName: "admin", Email: "admin@campuscare.local", Password: "admin", Role: models.RoleAdmin},
		{FirstName: "counselor", LastName: "counselor", Email: "counselor@campuscare.local", Password: "counselor", Role: models.RoleCounselor},
		{FirstName: "student", LastName: "student", Email: "student@campuscare.local", Password: "student", Role: models.RoleStudent},
	}

	var out []models.User
	for _, in := range defaults {
		existing, err := s.Repo.GetByEmail(ctx, in.Email)
		if err == nil {
			out = append(out, *existing)
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		created, err := s.Create(ctx, in)
		if err != nil {
			return nil, err
		}
		out = append(out, *created)
	}
	return out, nil
}
