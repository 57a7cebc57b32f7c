package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildName(t *testing.T) {
	now := time.Unix(1756600000, 0)

	tests := []struct {
		name     string
		original string
		want     string
	}{
		{"plain name", "rabbit.png", "1756600000-rabbit.png"},
		{"spaces become underscores", "evil rabbit photo.png", "1756600000-evil_rabbit_photo.png"},
		{"directory components are stripped", "../../etc/passwd", "1756600000-passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildName(tt.original, now))
		})
	}
}

func TestFileStore_StoreAndRemove(t *testing.T) {
	root := t.TempDir()
	store := NewFileStore(root)

	require.NoError(t, store.Store("1-a.png", []byte("first")))

	content, err := os.ReadFile(filepath.Join(root, "1-a.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), content)

	// Same destination overwrites
	require.NoError(t, store.Store("1-a.png", []byte("second")))
	content, err = os.ReadFile(filepath.Join(root, "1-a.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), content)

	// Remove accepts the stored public path form too
	require.NoError(t, store.Remove("/customers/1-a.png"))
	_, err = os.Stat(filepath.Join(root, "1-a.png"))
	assert.True(t, os.IsNotExist(err))

	// Removing an absent file is an error
	assert.Error(t, store.Remove("/customers/1-a.png"))
}
