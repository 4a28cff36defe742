package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArg(t *testing.T) {
	t.Parallel()
	args := []string{"molecule", "button"}
	assert.Equal(t, "molecule", Arg(args, 0))
	assert.Equal(t, "button", Arg(args, 1))
	assert.Empty(t, Arg(args, 2))
	assert.Empty(t, Arg(nil, 0))
}
