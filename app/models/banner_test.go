package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidBannerType(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidBannerType(BANNER_TYPE_VERTICAL))
	assert.True(t, ValidBannerType(BANNER_TYPE_HORIZONTAL))
	assert.False(t, ValidBannerType(""))
	assert.False(t, ValidBannerType("popup"))
}
