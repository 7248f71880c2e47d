package safe_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repoward/pkg/utils/safe"
)

func TestRemoveAll(t *testing.T) {
	t.Run("remove staged TLS directory", func(t *testing.T) {
		tmpDir := gt.R1(os.MkdirTemp("", "test-dir-*")).NoError(t)
		gt.NoError(t, os.WriteFile(filepath.Join(tmpDir, "client-key.pem"), []byte("key"), 0600))

		safe.RemoveAll(tmpDir)

		_, err := os.Stat(tmpDir)
		gt.True(t, os.IsNotExist(err))
	})

	t.Run("remove non-existing directory", func(t *testing.T) {
		safe.RemoveAll("/nonexistent/directory") // Should not panic
	})
}
