package solo

import (
	"log/slog"

	"github.com/ib-77/ropasync/pkg/rop"
)

// LogOk logs the Ok payload at info level under the "ok" key.
func LogOk[E, T any](logger *slog.Logger, msg string) func(input rop.Result[T, E]) rop.Result[T, E] {
	return OkSideEffect[E](func(data T) {
		logger.Info(msg, slog.Any("ok", data))
	})
}

// LogError logs the Error payload at error level under the "error" key.
func LogError[T, E any](logger *slog.Logger, msg string) func(input rop.Result[T, E]) rop.Result[T, E] {
	return ErrorSideEffect[T](func(message E) {
		logger.Error(msg, slog.Any("error", message))
	})
}
