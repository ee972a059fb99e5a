package sys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{
			name:  "EnvSet",
			key:   "TEST_KEY",
			value: "testValue",
		},
		{
			name:  "EnvEmpty",
			key:   "TEST_KEY",
			value: "",
		},
		{
			name:  "EnvOne",
			key:   "TEST_KEY",
			value: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			assert.Equal(t, tt.value, Env(tt.key, "default"))
		})
	}

	assert.Equal(t, "default", Env("BMA_SURELY_NOT_SET_KEY", "default"))
}

func TestBinExists(t *testing.T) {
	t.Parallel()

	assert.True(t, BinExists("sh"))
	assert.False(t, BinExists("a-binary-that-does-not-exist-anywhere"))
}

func TestOutput(t *testing.T) {
	t.Parallel()

	out, err := Output(context.Background(), "echo", "hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))

	_, err = Output(context.Background(), "a-binary-that-does-not-exist-anywhere")
	assert.Error(t, err)
}
