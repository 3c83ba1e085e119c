package utils

import (
	"errors"
	"infomed-service/internal/pkg/constvars"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateSessionJWT(sessionID, secret string, jwtExpiryTime int, extraClaims map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(jwtExpiryTime) * time.Hour).Unix(),
	}
	for key, value := range extraClaims {
		claims[key] = value
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New(constvars.ErrDevAuthTokenInvalidOrExpired)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New(constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return "", errors.New(constvars.ErrDevAuthInvalidSession)
	}
	return sessionID, nil
}
