package utils

import (
	"errors"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func VerifyJWT(c *gin.Context) (jwt.MapClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errors.New("missing or invalid Authorization header")
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	secret := []byte(os.Getenv("JWT_SECRET"))

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("could not parse JWT claims")
	}

	return claims, nil
}

// UserIDFromClaims pulls the userId claim as a uuid.
func UserIDFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["userId"].(string)
	if !ok {
		return uuid.Nil, errors.New("invalid userId in token")
	}
	return uuid.Parse(raw)
}

// RoleFromClaims pulls the role claim; empty when absent.
func RoleFromClaims(claims jwt.MapClaims) string {
	role, _ := claims["role"].(string)
	return role
}
