package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "42")
	t.Setenv("TEST_ENV_BAD_INT", "forty-two")
	t.Setenv("TEST_ENV_BOOL", "true")
	t.Setenv("TEST_ENV_DURATION", "90s")
	t.Setenv("TEST_ENV_SLICE", "http://a.test, http://b.test,,")

	assert.Equal(t, "fallback", GetEnvString("TEST_ENV_MISSING", "fallback"))
	assert.Equal(t, 42, GetEnvInt("TEST_ENV_INT", 1))
	assert.Equal(t, 7, GetEnvInt("TEST_ENV_BAD_INT", 7))
	assert.True(t, GetEnvBool("TEST_ENV_BOOL", false))
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_ENV_DURATION", time.Second))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetEnvStringSlice("TEST_ENV_SLICE", nil))
}
