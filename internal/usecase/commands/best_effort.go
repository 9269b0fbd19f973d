package commands

import (
	"context"
	"log/slog"
)

// runBestEffort isolates one post-commit side effect. Errors and panics are
// logged and never reach the caller.
func runBestEffort(ctx context.Context, logger *slog.Logger, step string, fn func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "side effect panicked",
				slog.String("step", step),
				slog.Any("panic", r))
		}
	}()

	if err := fn(ctx); err != nil {
		logger.WarnContext(ctx, "side effect failed",
			slog.String("step", step),
			slog.String("error", err.Error()))
	}
}
