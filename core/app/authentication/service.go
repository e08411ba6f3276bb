package authentication

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"meditrack/core/app/users"
	"meditrack/core/logger"
)

const tokenLifetime = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid username or password")

// LoginRequest represents the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user
type LoginResponse struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expires_at"`
	User      *users.UserResponse `json:"user"`
}

type AuthService struct {
	Users  *users.UserService
	Secret string
	Logger logger.Logger
}

func NewAuthService(userService *users.UserService, secret string, log logger.Logger) *AuthService {
	return &AuthService{
		Users:  userService,
		Secret: secret,
		Logger: log,
	}
}

// Login verifies credentials and issues a signed token
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	user, err := s.Users.GetByUsername(req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenLifetime)
	claims := jwt.MapClaims{
		"user_id": user.Id,
		"role":    user.RoleName(),
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.Secret))
	if err != nil {
		s.Logger.Error("failed to sign token", logger.String("error", err.Error()))
		return nil, errors.New("failed to issue token")
	}

	now := time.Now()
	if err := s.Users.DB.Model(user).Update("last_login", now).Error; err != nil {
		s.Logger.Warn("failed to record last login",
			logger.Uint("user_id", user.Id),
			logger.String("error", err.Error()))
	}

	return &LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      user.ToResponse(),
	}, nil
}

// ParseToken validates a signed token and returns its claims
func (s *AuthService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	return parseToken(tokenString, s.Secret)
}

func parseToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
