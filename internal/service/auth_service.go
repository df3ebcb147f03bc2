package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mindwell/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles counsellor and anonymous user authentication
type AuthService struct {
	counsellorUsername string
	counsellorPassword string
	jwtSecret          []byte
}

// NewAuthService creates a new auth service
func NewAuthService(username, password, secret string) *AuthService {
	return &AuthService{
		counsellorUsername: username,
		counsellorPassword: password,
		jwtSecret:          []byte(secret),
	}
}

// Login validates counsellor credentials and returns a token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.counsellorUsername || password != s.counsellorPassword {
		return nil, ErrInvalidCredentials
	}

	counsellorID := "counsellor_" + uuid.New().String()[:8]

	claims := &model.CounsellorClaims{
		CounsellorID: counsellorID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:        tokenString,
		CounsellorID: counsellorID,
	}, nil
}

// ValidateCounsellorToken validates a counsellor JWT and returns claims
func (s *AuthService) ValidateCounsellorToken(tokenString string) (*model.CounsellorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.CounsellorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.CounsellorClaims)
	if !ok || !token.Valid || claims.CounsellorID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// OpenSession issues a session-scoped token for an anonymous user.
// An empty userID creates a fresh anonymous identity.
func (s *AuthService) OpenSession(userID string) (*model.SessionResponse, error) {
	if userID == "" {
		userID = "user_" + uuid.New().String()[:8]
	}
	sessionID := uuid.New().String()

	claims := &model.UserClaims{
		UserID:    userID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.SessionResponse{
		Token:     tokenString,
		UserID:    userID,
		SessionID: sessionID,
	}, nil
}

// ValidateUserToken validates a user session JWT and returns claims
func (s *AuthService) ValidateUserToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
