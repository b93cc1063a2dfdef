package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("COMMON_TEST_SET", "value")
	t.Setenv("COMMON_TEST_EMPTY", "")

	assert.Equal(t, "value", GetEnv("COMMON_TEST_SET", "fallback"))
	assert.Equal(t, "", GetEnv("COMMON_TEST_EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("COMMON_TEST_UNSET", "fallback"))
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		fallback bool
		want     bool
	}{
		{name: "unset uses fallback", fallback: true, want: true},
		{name: "empty uses fallback", set: true, value: "", fallback: true, want: true},
		{name: "true", set: true, value: "true", want: true},
		{name: "numeric", set: true, value: "1", want: true},
		{name: "invalid uses fallback", set: true, value: "maybe", fallback: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("COMMON_TEST_BOOL", tt.value)
			}

			assert.Equal(t, tt.want, GetEnvBool("COMMON_TEST_BOOL", tt.fallback))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("COMMON_TEST_DURATION", "150ms")
	assert.Equal(t, 150*time.Millisecond, GetEnvDuration("COMMON_TEST_DURATION", time.Second))

	t.Setenv("COMMON_TEST_DURATION", "soon")
	assert.Equal(t, time.Second, GetEnvDuration("COMMON_TEST_DURATION", time.Second))
}

func TestGetEnvironmentLabel(t *testing.T) {
	prev := Production
	defer func() { Production = prev }()

	Production = true
	assert.Equal(t, "production", GetEnvironmentLabel())

	Production = false
	assert.Equal(t, "development", GetEnvironmentLabel())
}
