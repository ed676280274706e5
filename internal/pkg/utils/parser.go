package utils

import (
	"errors"
	"questionnaire-service/internal/pkg/constvars"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// ParseSubjectFromJWT validates an HS256 token and returns the subject
// reference taken from the fhir_user claim, or from sub when absent.
func ParseSubjectFromJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	if fhirUser, ok := claims["fhir_user"].(string); ok && fhirUser != "" {
		return fhirUser, nil
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub, nil
	}
	return "", nil
}

func ParseBearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
