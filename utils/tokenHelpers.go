package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type EmployeeClaims struct {
	EmployeeID uint   `json:"employee_id"`
	Position   string `json:"position"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, employeeID uint, position string, ttl time.Duration) (string, error) {
	claims := EmployeeClaims{
		EmployeeID: employeeID,
		Position:   position,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*EmployeeClaims, error) {
	claims := &EmployeeClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
