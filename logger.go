package menugfx

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"weak"

	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/internal/slogx"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slogx.Nop())
}

// bound tracks the drivers currently bound to a Display so that
// SetLogger reaches them. Displays are held weakly; entries for
// collected displays are dropped on the next update.
var bound struct {
	mu      sync.Mutex
	drivers map[weak.Pointer[Display]]driver.Driver
}

// SetLogger configures the logger for menugfx and every bound driver.
// By default, menugfx produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to disable logging.
//
// Log levels used by menugfx:
//   - [slog.LevelDebug]: probe results, font and texture loads
//   - [slog.LevelInfo]: the display driver selected
//   - [slog.LevelWarn]: unbalanced scissor pairs, failed releases
//
// Example:
//
//	menugfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	l = slogx.OrNop(l)
	loggerPtr.Store(l)

	bound.mu.Lock()
	defer bound.mu.Unlock()
	pruneBound()
	for _, drv := range bound.drivers {
		propagateLogger(drv, l)
	}
}

// Logger returns the current logger used by menugfx. Driver packages
// receive it through their SetLogger method when bound.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by drivers that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

func propagateLogger(drv driver.Driver, l *slog.Logger) {
	if ls, ok := drv.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}

func trackBound(d *Display, drv driver.Driver) {
	bound.mu.Lock()
	defer bound.mu.Unlock()
	pruneBound()
	key := weak.Make(d)
	if drv == nil {
		delete(bound.drivers, key)
		return
	}
	if bound.drivers == nil {
		bound.drivers = make(map[weak.Pointer[Display]]driver.Driver)
	}
	bound.drivers[key] = drv
	propagateLogger(drv, Logger())
}

// pruneBound forgets displays that were collected without Free.
// bound.mu must be held.
func pruneBound() {
	for k := range bound.drivers {
		if k.Value() == nil {
			delete(bound.drivers, k)
		}
	}
}
