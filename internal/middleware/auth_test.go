package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *model.User, trainer *model.Trainer, student *model.Student) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (r *stubUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newAuthRouter(repo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(repo, testSecret)

	router := gin.New()
	protected := router.Group("", m.RequireAuth())
	protected.GET("/open", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	student := protected.Group("", m.RequireStudent())
	student.GET("/student-only", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	admin := protected.Group("", m.RequireAdmin())
	admin.GET("/admin-only", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	return router
}

func seedUser(repo *stubUserRepo, role model.Role) uuid.UUID {
	id := uuid.New()
	repo.users[id] = &model.User{ID: id, Role: role}
	return id
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	router := newAuthRouter(&stubUserRepo{users: map[uuid.UUID]*model.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAcceptsBearerToken(t *testing.T) {
	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{}}
	userID := seedUser(repo, model.RoleTrainer)
	router := newAuthRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequireAuthAcceptsQueryToken(t *testing.T) {
	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{}}
	userID := seedUser(repo, model.RoleStudent)
	router := newAuthRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open?token="+signToken(t, userID), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequireStudentAllowsStudent(t *testing.T) {
	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{}}
	userID := seedUser(repo, model.RoleStudent)
	router := newAuthRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/student-only", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequireStudentRejectsOtherRoles(t *testing.T) {
	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{}}
	userID := seedUser(repo, model.RoleTrainer)
	router := newAuthRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/student-only", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "student access required")
}

func TestRequireAdminAllowsAdminOnly(t *testing.T) {
	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{}}
	adminID := seedUser(repo, model.RoleAdmin)
	studentID := seedUser(repo, model.RoleStudent)
	router := newAuthRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, adminID))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, studentID))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAuthRejectsWrongSecret(t *testing.T) {
	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{}}
	userID := seedUser(repo, model.RoleStudent)
	router := newAuthRouter(repo)

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
