package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/recordkit/pkg/version"
)

func TestGet(t *testing.T) {
	info := version.Get()

	assert.Equal(t, version.Version, info.Version)
	assert.Equal(t, version.CommitHash, info.CommitHash)
	assert.Equal(t, version.BuildTime, info.BuildTime)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestString(t *testing.T) {
	s := version.Get().String()
	assert.Contains(t, s, "recordkit")
	assert.Contains(t, s, version.Version)
}
