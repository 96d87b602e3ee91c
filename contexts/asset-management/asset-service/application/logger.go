package application

import "log/slog"

// ModuleName is the structured-log value of the "module" key.
const ModuleName = "asset-management/asset-service"

func ResolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
