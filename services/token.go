package services

import (
	"errors"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "toStudy"

// GenerateToken generates a short-lived access token for the user
func GenerateToken(userID string) (string, error) {
	return generate(userID, "access",
		time.Duration(utils.JWTExpirationTime)*time.Second)
}

// GenerateRefreshToken generates a long-lived refresh token for the user
func GenerateRefreshToken(userID string) (string, error) {
	return generate(userID, "refresh",
		time.Duration(utils.RefreshTokenExpirationTime)*time.Second)
}

func generate(userID, tokenType string, lifetime time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("user ID is required")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    tokenType,
		"iss":     tokenIssuer,
		"iat":     now.Unix(),
		"exp":     now.Add(lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}
