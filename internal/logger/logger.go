package logger

import "sync"

var (
	global *Logger
	once   sync.Once
)

// Get returns the process-wide logger. The first call initializes it with
// the given level string (the log.level key in configs/config.yml); later
// calls return the same instance and ignore the argument.
func Get(level string) *Logger {
	once.Do(func() {
		global = newZapLogger(level)
	})
	return global
}
