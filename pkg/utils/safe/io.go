package safe

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/repoward/pkg/utils/logging"
)

// RemoveAll safely removes the directory and logs error if any
func RemoveAll(path string) {
	if err := os.RemoveAll(path); err != nil {
		logging.Default().Warn("Fail to remove directory", slog.String("path", path), slog.Any("error", err))
	}
}
