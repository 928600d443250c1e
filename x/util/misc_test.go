package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShorten(t *testing.T) {
	assert.Equal(t, "1a2b3c4", shorten("1a2b3c4d5e6f"))
	assert.Equal(t, "abc", shorten("abc"))
	assert.Equal(t, "unknown", shorten("unknown"))
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, "v1.2.0", GetVersion("v1.2.0"))
	assert.NotEmpty(t, GetVersion("unknown"))
	assert.True(t, strings.HasPrefix(GetFullVersion("v1.2.0"), "v1.2.0-"))
}
