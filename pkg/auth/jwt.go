package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(accountID int, expirationTime time.Time) (string, error)
	GenerateOperatorJWT(accountID int, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// RoleOperator marks tokens allowed to settle and void wagers.
const RoleOperator = "operator"

var secretKey = []byte("your-secret-key")

// SetSecret overrides the signing key with the configured one.
func SetSecret(secret string) {
	if secret != "" {
		secretKey = []byte(secret)
	}
}

type Claims struct {
	AccountID int    `json:"account_id"`
	Role      string `json:"role,omitempty"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(accountID int, expirationTime time.Time) (string, error) {
	return generate(accountID, "", expirationTime)
}

// GenerateOperatorJWT issues a token carrying the operator role.
func (s *JWTService) GenerateOperatorJWT(accountID int, expirationTime time.Time) (string, error) {
	return generate(accountID, RoleOperator, expirationTime)
}

func generate(accountID int, role string, expirationTime time.Time) (string, error) {
	claims := Claims{
		AccountID: accountID,
		Role:      role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "capperhub",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AccountID == 0 || claims.Issuer != "capperhub" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
