package providers

import (
	"dsatrack/internal/structures"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogTypeByRequestType_POST(t *testing.T) {
	assert.Equal(t, TypeWrite, GetLogTypeByRequestType("POST"))
}

func TestGetLogTypeByRequestType_GET(t *testing.T) {
	assert.Equal(t, TypeRead, GetLogTypeByRequestType("GET"))
}

func TestGetLogTypeByRequestType_Mutating(t *testing.T) {
	assert.Equal(t, TypeWrite, GetLogTypeByRequestType("PUT"))
	assert.Equal(t, TypeWrite, GetLogTypeByRequestType("DELETE"))
	assert.Equal(t, TypeRead, GetLogTypeByRequestType("HEAD"))
}

func TestNewLogProvider_CreatesLogFiles(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   dir,
		},
	}

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)

	logger.Infof(TypeApp, "test message")
	logger.Debugf(TypeRead, "read message")
	logger.Warnf(TypeWrite, "write message %d", 7)
	logger.Close()

	for _, name := range []string{"app.log", "read.log", "write.log"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	app, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(app), "test message")

	// debug is below the configured level
	read, err := os.ReadFile(filepath.Join(dir, "read.log"))
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(string(read)))

	write, err := os.ReadFile(filepath.Join(dir, "write.log"))
	require.NoError(t, err)
	assert.Contains(t, string(write), "write message 7")
}

func TestNewLogProvider_InvalidDir(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/nonexistent/directory/path",
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "loud",
			Mode:  0644,
			Dir:   t.TempDir(),
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}
