package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHours(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "6")
	assert.Equal(t, 6*time.Hour, getEnvHours("JWT_TTL_HOURS", 24))
}

func TestGetEnvHoursFallback(t *testing.T) {
	assert.Equal(t, 24*time.Hour, getEnvHours("UNSET_TTL_HOURS", 24))
}

func TestGetEnvHoursBadValue(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "soon")
	assert.Equal(t, 24*time.Hour, getEnvHours("JWT_TTL_HOURS", 24))
}
