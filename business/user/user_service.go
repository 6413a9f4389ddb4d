package user

import (
	"context"
	"errors"
	"strconv"
	"time"

	"vibecart/domain"
	redisrepo "vibecart/internal/repository/redis"
	"vibecart/pkg/logger"
	"vibecart/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// SessionStore contract interface
type SessionStore interface {
	StoreSession(ctx context.Context, userID, token string, data redisrepo.SessionData, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	DropSession(ctx context.Context, userID, token string) error
}

type userService struct {
	userRepo UserRepository
	validate *validator.Validate
	sessions SessionStore
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, sessions SessionStore) *userService {
	return &userService{
		userRepo: userRepo,
		validate: validate,
		sessions: sessions,
	}
}

// Register creates a storefront account. The role is always "user";
// admins exist only through the seed command.
func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Email already exists")
		return domain.User{}, domain.ErrEmailTaken
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, err
	}

	newUser := domain.User{
		Name:     user.Name,
		Email:    user.Email,
		Password: passwordHash,
		Role:     domain.RoleUser,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password, ipAddress, userAgent string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Invalid user credentials", err)
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	if !utils.CheckPassword(password, user.Password) {
		logger.Error("User password incorrect")
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, user.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, err
	}

	now := time.Now()
	err = s.sessions.StoreSession(ctx, userIDStr, token, redisrepo.SessionData{
		UserID:    userIDStr,
		Role:      user.Role,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(utils.TokenTTL),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}, utils.TokenTTL)
	if err != nil {
		logger.Error("Failed to store session", err)
		return "", domain.User{}, err
	}

	user.Password = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, userID uint, token string) error {
	userIDStr := strconv.FormatUint(uint64(userID), 10)

	if err := s.sessions.DropSession(ctx, userIDStr, token); err != nil {
		logger.Error("Failed to drop session", err)
		return err
	}

	return nil
}

// ValidateTokenFromRedis satisfies middleware.TokenValidator.
func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	return s.sessions.ValidateToken(ctx, token)
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}
