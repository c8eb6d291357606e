package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedExt(t *testing.T) {
	assert.True(t, IsAllowedExt(".png"))
	assert.True(t, IsAllowedExt(".JPG"))
	assert.True(t, IsAllowedExt("pdf"))
	assert.True(t, IsAllowedExt(".webp"))
	assert.False(t, IsAllowedExt(".txt"))
	assert.False(t, IsAllowedExt(""))
	assert.False(t, IsAllowedExt(".exe"))
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "jpeg", NormalizeExt(".JPEG"))
	assert.Equal(t, "png", NormalizeExt("png"))
	assert.Equal(t, "", NormalizeExt("."))
}
