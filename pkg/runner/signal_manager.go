package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// DefaultSettleDelay is how long Settle waits for a signal to catch up with an input error.
const DefaultSettleDelay = 100 * time.Millisecond

// SignalManager owns the interrupt context of a session.
// SIGINT and SIGTERM cancel the context; the runner then ends the loop.
type SignalManager struct {
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignalManager starts listening for signals immediately.
func NewSignalManager(parent context.Context) *SignalManager {
	if parent == nil {
		parent = context.Background()
	}
	sm := &SignalManager{parent: parent}
	sm.Reset()
	return sm
}

// Context is cancelled when a signal arrives or Stop is called.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Interrupted reports whether the session ended because of a signal or Stop.
func (sm *SignalManager) Interrupted() bool {
	return sm.ctx.Err() != nil
}

// Reset re-arms the listener with a fresh context.
func (sm *SignalManager) Reset() {
	if sm.cancel != nil {
		sm.cancel()
	}
	sm.ctx, sm.cancel = signal.NotifyContext(sm.parent, os.Interrupt, syscall.SIGTERM)
}

// Stop releases the listener and cancels the context.
func (sm *SignalManager) Stop() {
	if sm.cancel != nil {
		sm.cancel()
	}
}

// Settle waits up to d for the context to be cancelled.
// Ctrl+C can close stdin (EOF) slightly before the signal is delivered;
// callers use Settle before deciding whether an input error was an interrupt.
func (sm *SignalManager) Settle(d time.Duration) bool {
	if sm.ctx.Err() != nil {
		return true
	}
	select {
	case <-sm.ctx.Done():
		return true
	case <-time.After(d):
		return false
	}
}
