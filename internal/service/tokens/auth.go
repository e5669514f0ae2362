// Package tokens выпускает и проверяет JWT сессии клиента. Токен подтверждает только то, что его выпустил
// этот сервис для указанного клиента, это не аутентификация.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

type CustomerClaims struct {
	jwt.RegisteredClaims
	CustomerID uuid.UUID `json:"cid"`
}

func GenerateCustomerJWT(customerID uuid.UUID, expire time.Duration, key []byte) (string, error) {
	claims := CustomerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		CustomerID: customerID,
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating customer jwt token: %s", err.Error())
	}
	return token, nil
}

// ValidateCustomerJWT проверяет подпись и срок действия токена и возвращает его claims.
// Ошибки: ErrTokenExpired, ErrInvalidToken.
func ValidateCustomerJWT(tokenString string, key []byte) (*CustomerClaims, error) {
	token, err := validateJWT(tokenString, new(CustomerClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating customer jwt token: %w", err)
	}

	claims, ok := token.Claims.(*CustomerClaims)
	if !ok || claims.CustomerID == uuid.Nil {
		return nil, fmt.Errorf("validating customer jwt token: %w: invalid claims", ErrInvalidToken)
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Join(ErrTokenExpired, ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err.Error())
	}

	return token, nil
}
