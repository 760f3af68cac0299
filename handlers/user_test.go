package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"campuscare/models"
	"campuscare/services/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserService records Update calls; the other methods are inert.
type fakeUserService struct {
	updatedID string
	updated   *models.UserUpdate
}

func (f *fakeUserService) Create(ctx context.Context, in user.CreateInput) (*models.User, error) {
	return &models.User{}, nil
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return &models.User{ID: id}, nil
}

func (f *fakeUserService) List(ctx context.Context) ([]models.User, error) { return nil, nil }
func (f *fakeUserService) Delete(ctx context.Context, id string) error     { return nil }

func (f *fakeUserService) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	f.updatedID = id
	f.updated = &upd
	u := &models.User{ID: id}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	return u, nil
}

func (f *fakeUserService) SetPassword(ctx context.Context, id, newPassword string) error { return nil }

func (f *fakeUserService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	return nil
}

func (f *fakeUserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	return nil, &user.InvalidCredentialsError{}
}

func (f *fakeUserService) SeedDefaults(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func newUserRouter(svc user.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUserHandler(svc)
	r.PATCH("/api/users/:id", h.UpdateUserHandler)
	return r
}

func patchUser(r *gin.Engine, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/users/"+id, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateUserRejectsUnknownFields(t *testing.T) {
	svc := &fakeUserService{}
	r := newUserRouter(svc)

	w := patchUser(r, "u1", `{"first_name":"Sam","role":"ADMIN","is_admin":true}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.updated)
}

func TestUpdateUserRejectsRoleField(t *testing.T) {
	svc := &fakeUserService{}
	r := newUserRouter(svc)

	// Role is not on the whitelist even on its own.
	w := patchUser(r, "u1", `{"role":"ADMIN"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.updated)
}

func TestUpdateUserAcceptsWhitelistedFields(t *testing.T) {
	svc := &fakeUserService{}
	r := newUserRouter(svc)

	w := patchUser(r, "u1", `{"first_name":"Sam","email":"sam@campuscare.local"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.updated)
	assert.Equal(t, "u1", svc.updatedID)
	require.NotNil(t, svc.updated.FirstName)
	assert.Equal(t, "Sam", *svc.updated.FirstName)
	require.NotNil(t, svc.updated.Email)
	assert.Equal(t, "sam@campuscare.local", *svc.updated.Email)
	assert.Nil(t, svc.updated.LastName)
}

func TestUpdateUserRejectsMalformedBody(t *testing.T) {
	svc := &fakeUserService{}
	r := newUserRouter(svc)

	w := patchUser(r, "u1", `{"first_name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.updated)
}
