package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderError(t *testing.T) {
	out := RenderError("unknown harmony name")
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "unknown harmony name")
}
