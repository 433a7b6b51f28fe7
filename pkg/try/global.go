package try

import "sync"

var (
	globalMu   sync.RWMutex
	globalOpts []Option
)

// SetGlobal replaces the process-wide default options wholesale; the last
// writer wins. The stored options are applied by every executor invocation
// before its local options.
func SetGlobal(opts ...Option) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalOpts = append([]Option(nil), opts...)
}

// Global returns a copy of the process-wide default options.
func Global() []Option {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return append([]Option(nil), globalOpts...)
}

// ResetGlobal clears the process-wide default options.
func ResetGlobal() {
	SetGlobal()
}
