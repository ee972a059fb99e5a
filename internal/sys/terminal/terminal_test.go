package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoColorEnv(t *testing.T) {
	t.Setenv(noColorEnv, "1")
	assert.True(t, NoColorEnv())

	t.Setenv(noColorEnv, "")
	assert.False(t, NoColorEnv())
}
