package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("SCALES_ADDR", "")
	t.Setenv("SCALES_KEYBOARD", "")
	t.Setenv("SCALES_LOG_LEVEL", "")
	t.Setenv("SCALES_EXPORT_DIR", "")

	assert := assert.New(t)
	assert.Equal(":8080", GetListenAddr())
	assert.Equal("Teenage Engineering OP-1", GetKeyboardName())
	assert.Equal("info", GetLogLevel())
	assert.Equal("./out", GetExportDir())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SCALES_ADDR", "127.0.0.1:9000")
	t.Setenv("SCALES_KEYBOARD", "volca")
	t.Setenv("SCALES_LOG_LEVEL", "DEBUG")
	t.Setenv("SCALES_EXPORT_DIR", "/tmp/scales")

	assert := assert.New(t)
	assert.Equal("127.0.0.1:9000", GetListenAddr())
	assert.Equal("volca", GetKeyboardName())
	assert.Equal("debug", GetLogLevel())
	assert.Equal("/tmp/scales", GetExportDir())
}
