package store

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/action"
)

// LogActions logs every action that reaches the store at debug level, with
// the time spent in the rest of the chain.
func LogActions(logger *log.Logger) Middleware {
	return func(next DispatchFunc) DispatchFunc {
		return func(a action.Action) {
			start := time.Now()
			next(a)
			logger.Debug("dispatch", "type", string(a.Type()), "action", a, "took", time.Since(start))
		}
	}
}
