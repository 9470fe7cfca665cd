package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. Session tokens gate the API; reset tokens are only good for
// the password-reset flow and must never be accepted as a session.
const (
	PurposeSession = "session"
	PurposeReset   = "reset"
)

// Claims includes the standard JWT claims plus the application's own fields.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"` // "session" | "reset"
}

// Generate signs a session JWT carrying userID and email.
func Generate(secret, userID, email, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, email, issuer, PurposeSession, expMinutes)
}

// GenerateReset signs a short-lived password-reset token for the user.
func GenerateReset(secret, userID, email, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, email, issuer, PurposeReset, expMinutes)
}

func generate(secret, userID, email, issuer, purpose string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:  userID,
		Email:   email,
		Purpose: purpose,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validates a session token and returns userID and email.
// Returns an error if the token is invalid, expired, has a wrong signature,
// or was issued for a different purpose (e.g. a reset token).
func Parse(secret, tokenString string) (userID, email string, err error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", "", err
	}
	if claims.Purpose != "" && claims.Purpose != PurposeSession {
		return "", "", fmt.Errorf("jwt: token is not a session token")
	}
	return claims.UserID, claims.Email, nil
}

// ParseReset validates a password-reset token and returns userID and email.
func ParseReset(secret, tokenString string) (userID, email string, err error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", "", err
	}
	if claims.Purpose != PurposeReset {
		return "", "", fmt.Errorf("jwt: token is not a reset token")
	}
	return claims.UserID, claims.Email, nil
}

func parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}
