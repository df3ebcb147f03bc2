package model

import "github.com/golang-jwt/jwt/v5"

// CounsellorClaims are JWT claims for counsellor authentication
type CounsellorClaims struct {
	CounsellorID string `json:"counsellor_id"`
	jwt.RegisteredClaims
}

// UserClaims are JWT claims for anonymous user session tokens
type UserClaims struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for counsellor login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful counsellor login
type LoginResponse struct {
	Token        string `json:"token"`
	CounsellorID string `json:"counsellor_id"`
}

// SessionResponse is returned when an anonymous user session is opened
type SessionResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}
