package internal

import (
	"log/slog"

	"github.com/milchschlumpf/navbug/pkg/navbug/logging"
)

func GetInternalLogger() *slog.Logger {
	return logging.Internal()
}
