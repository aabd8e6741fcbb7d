package service

import (
	"context"
	"testing"
	"time"

	"github.com/placementhub/placement-mentor-hub/internal/dto"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(users *fakeUserRepo) AuthService {
	return NewAuthService(users, "test-secret", 15*time.Minute)
}

func TestRegisterCreatesRoleProfile(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	student, err := svc.Register(ctx, dto.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret123",
		Role: "STUDENT", GoalTitle: "Crack SDE-1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, student.Role)
	require.NotNil(t, student.Student)
	assert.True(t, student.Student.HasGoalClarity)
	assert.Nil(t, student.Trainer)
	assert.Empty(t, student.PasswordHash)

	trainer, err := svc.Register(ctx, dto.RegisterInput{
		Name: "Ravi", Email: "ravi@example.com", Password: "secret123",
		Role: "TRAINER", PricePerMonth: 499,
	})
	require.NoError(t, err)
	require.NotNil(t, trainer.Trainer)
	assert.Equal(t, 499, trainer.Trainer.PricePerMonth)
	assert.True(t, trainer.Trainer.IsActive)

	admin, err := svc.Register(ctx, dto.RegisterInput{
		Name: "Root", Email: "root@example.com", Password: "secret123", Role: "ADMIN",
	})
	require.NoError(t, err)
	assert.Nil(t, admin.Trainer)
	assert.Nil(t, admin.Student)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	input := dto.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret123", Role: "STUDENT",
	}
	_, err := svc.Register(ctx, input)
	require.NoError(t, err)

	input.Name = "Another Asha"
	_, err = svc.Register(ctx, input)
	assert.ErrorIs(t, err, apperror.ErrDuplicateEmail)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), dto.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret123", Role: "WIZARD",
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestRegisterScrubsOnlyTheReturnedUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	registered, err := svc.Register(ctx, dto.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret123", Role: "STUDENT",
	})
	require.NoError(t, err)
	assert.Empty(t, registered.PasswordHash)

	// The stored row keeps its hash so the account stays loginable.
	stored, err := users.FindByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestLoginIssuesToken(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret123", Role: "STUDENT",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, dto.LoginInput{Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Empty(t, resp.User.PasswordHash)
}

func TestLoginHidesWhichCredentialFailed(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret123", Role: "STUDENT",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginInput{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Login(ctx, dto.LoginInput{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
