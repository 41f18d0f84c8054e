package future

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UnobservedHandler receives failures that settled a Future nobody
// observed. id is the identity of the leaked outcome.
type UnobservedHandler func(id uuid.UUID, err error)

var (
	hazardMu   sync.RWMutex
	logger     *zap.Logger
	unobserved UnobservedHandler
)

// Logger returns the package logger. It is a no-op logger until
// SetLogger is called.
func Logger() *zap.Logger {
	hazardMu.RLock()
	defer hazardMu.RUnlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// SetLogger installs the logger used to report unobserved failures.
func SetLogger(l *zap.Logger) {
	hazardMu.Lock()
	defer hazardMu.Unlock()
	logger = l
}

// SetUnobservedHandler replaces the default unobserved-failure report,
// which logs at warn level. Passing nil restores the default.
func SetUnobservedHandler(h UnobservedHandler) {
	hazardMu.Lock()
	defer hazardMu.Unlock()
	unobserved = h
}

func report(id uuid.UUID, err error) {
	hazardMu.RLock()
	h := unobserved
	hazardMu.RUnlock()

	if h != nil {
		h(id, err)
		return
	}

	Logger().Warn("unobserved future failure",
		zap.String("outcome_id", id.String()),
		zap.Error(err))
}
