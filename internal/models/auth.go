package models

import "github.com/golang-jwt/jwt/v5"

// Role identifies the account tier carried in the session token.
type Role string

const (
	RoleMaster   Role = "master"
	RoleRetailer Role = "retailer"
)

// SessionClaims are the JWT claims issued by the backend at login.
type SessionClaims struct {
	UserID uint   `json:"user_id"`
	Role   Role   `json:"role"`
	Mobile string `json:"mobile,omitempty"`
	jwt.RegisteredClaims
}

// AuthContext is the explicit session handle passed to the gate and
// orchestrator on every call. It is built exactly once per request by the
// auth middleware; services never read role or token state from anywhere else.
type AuthContext struct {
	UserID uint
	Role   Role
	Mobile string
	// Token is the raw bearer token, forwarded verbatim to the backend API.
	Token string
}
