package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckytaka/earning-app-backend/internal/config"
)

func TestParsePrizeAmount(t *testing.T) {
	tests := []struct {
		label  string
		amount float64
		isCash bool
	}{
		{"5000 Tk", 5000, true},
		{"200 Tk", 200, true},
		{"iPhone 15", 0, false},
		{"Gold Ring", 0, false},
		{"Cash", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		amount, isCash := ParsePrizeAmount(tt.label)
		assert.Equal(t, tt.isCash, isCash, "label %q", tt.label)
		assert.Equal(t, tt.amount, amount, "label %q", tt.label)
	}
}

func TestDayStamp(t *testing.T) {
	ts := time.Date(2024, 5, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-07", DayStamp(ts))
	assert.Equal(t, DayStamp(ts), DayStamp(ts.Add(-23*time.Hour)))
	assert.NotEqual(t, DayStamp(ts), DayStamp(ts.Add(time.Hour)))
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "s3cret", ExpiresIn: 60}}

	token, err := GenerateJWT("64b2f0c8a1b2c3d4e5f60718", cfg)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "64b2f0c8a1b2c3d4e5f60718", claims["sub"])

	_, err = ValidateJWT(token, &config.Config{JWT: config.JWTConfig{Secret: "other"}})
	assert.Error(t, err)
}
