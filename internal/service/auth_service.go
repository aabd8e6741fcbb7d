package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/placementhub/placement-mentor-hub/internal/dto"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/internal/repository"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*model.User, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, secret string, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo: userRepo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register creates the user together with its role-matching profile. The
// role is fixed at creation and never changes afterwards.
func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         model.Role(input.Role),
	}
	if input.College != "" {
		user.College = &input.College
	}
	if input.YearOfStudy > 0 {
		year := input.YearOfStudy
		user.YearOfStudy = &year
	}

	var trainer *model.Trainer
	var student *model.Student

	switch user.Role {
	case model.RoleTrainer:
		trainer = &model.Trainer{
			PricePerMonth: input.PricePerMonth,
			Bio:           input.Bio,
			Skills:        input.Skills,
			IsActive:      true,
		}
	case model.RoleStudent:
		student = &model.Student{}
		if input.GoalTitle != "" {
			student.HasGoalClarity = true
			student.GoalTitle = &input.GoalTitle
		}
		if input.SelectedTrack != "" {
			student.SelectedTrack = &input.SelectedTrack
		}
	case model.RoleAdmin:
		// Admins carry no profile extension.
	default:
		return nil, apperror.ErrValidation
	}

	if err := s.userRepo.Create(ctx, user, trainer, student); err != nil {
		return nil, err
	}

	user.Trainer = trainer
	user.Student = student
	user.PasswordHash = ""
	return user, nil
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the caller.
		return nil, apperror.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.ErrUnauthorized
	}

	token, expiresAt, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresAt,
		User:        user,
	}, nil
}

func (s *authService) generateToken(user *model.User) (string, int64, error) {
	expiresAt := time.Now().Add(s.tokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", 0, err
	}

	return signed, expiresAt.Unix(), nil
}
