package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/joho/godotenv"
)

// EnvFile is read from module root before looking up variables of integration tests.
const EnvFile = ".env.test"

var loadOnce sync.Once

// moduleRoot finds the nearest parent directory having go.mod.
func moduleRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func loadEnvFile() {
	loadOnce.Do(func() {
		if root := moduleRoot(); root != "" {
			// Missing file is normal. Already set variables win.
			_ = godotenv.Load(filepath.Join(root, EnvFile))
		}
	})
}

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	loadEnvFile()

	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}
