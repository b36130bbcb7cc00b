package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/luckytaka/earning-app-backend/internal/config"
)

// GenerateJWT generates a JWT token for an account id
func GenerateJWT(accountID string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"sub": accountID,
		"exp": time.Now().Add(time.Second * time.Duration(cfg.JWT.ExpiresIn)).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateJWT validates a JWT token and returns its claims
func ValidateJWT(tokenString string, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ParsePrizeAmount extracts the cash value from a prize label like "5000 Tk".
// Labels without a "Tk" denomination are products and report false.
func ParsePrizeAmount(label string) (float64, bool) {
	if !strings.Contains(label, "Tk") {
		return 0, false
	}
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0, false
	}
	amount, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// DayStamp formats a time as a calendar-day marker used for daily quotas
// (free spins, investment profit claims).
func DayStamp(t time.Time) string {
	return t.Format("2006-01-02")
}
