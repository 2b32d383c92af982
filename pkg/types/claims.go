package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload attached to authenticated requests.
type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
