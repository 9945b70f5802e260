package errs

import (
	"errors"
	"fmt"
	"log/slog"
)

// Wrap adds context and preserves the error chain (errors.Is/As works).
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context and preserves the error chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	// Append the original err as the last arg for %w.
	args = append(args, err)
	return fmt.Errorf(format+": %w", args...)
}

// Loggable makes slog encode the error with its unwrap chain.
// Usage: slog.Any("err", errs.Loggable(err))
func Loggable(err error) slog.LogValuer { return loggable{err: err} }

type loggable struct{ err error }

func (l loggable) LogValue() slog.Value {
	if l.err == nil {
		return slog.GroupValue()
	}

	chain := make([]string, 0, 8)
	for e := l.err; e != nil; e = errors.Unwrap(e) {
		chain = append(chain, e.Error())
	}

	return slog.GroupValue(
		slog.String("message", l.err.Error()),
		slog.Any("chain", chain),
	)
}
