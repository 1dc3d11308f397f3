package dispatcher

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/kbdwrap/internal/dispatcher/handler"
	"github.com/dshills/kbdwrap/internal/kbd"
)

// NoticeKey is the translation key shown when a command changes nothing.
const NoticeKey = "select-text-notice"

// Logger is the logging surface the dispatcher writes to.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

// Notify implements Notifier.
func (f NotifierFunc) Notify(msg string) { f(msg) }

// Translator looks up localized strings by key.
type Translator interface {
	Translate(key string) string
}

// UndoGrouper is implemented by editors that can merge edits into one undo
// step.
type UndoGrouper interface {
	BeginGroup(name string)
	EndGroup()
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithNotifier sets the notifier used for no-op results.
func WithNotifier(n Notifier) Option {
	return func(d *Dispatcher) { d.notifier = n }
}

// WithTranslator sets the translator for user-facing messages.
func WithTranslator(t Translator) Option {
	return func(d *Dispatcher) { d.translator = t }
}

// WithMetrics enables execution metrics.
func WithMetrics() Option {
	return func(d *Dispatcher) { d.metrics = NewMetrics() }
}

// WithPanicRecovery sets whether handler panics are recovered.
func WithPanicRecovery(recover bool) Option {
	return func(d *Dispatcher) { d.recoverPanics = recover }
}

// Dispatcher runs registered commands against an editor.
type Dispatcher struct {
	mu sync.RWMutex

	registry   *Registry
	logger     Logger
	notifier   Notifier
	translator Translator
	metrics    *Metrics

	recoverPanics bool
}

// New creates a dispatcher over the given registry.
func New(registry *Registry, opts ...Option) *Dispatcher {
	if registry == nil {
		registry = NewRegistry()
	}
	d := &Dispatcher{
		registry:      registry,
		logger:        nopLogger{},
		recoverPanics: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Registry returns the command registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Metrics returns the metrics collector, or nil when disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// SetNotifier replaces the notifier.
func (d *Dispatcher) SetNotifier(n Notifier) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notifier = n
}

// SetTranslator replaces the translator.
func (d *Dispatcher) SetTranslator(t Translator) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.translator = t
}

// Execute runs the command registered under id against ed. All edits made
// by the handler form a single undo step when ed implements UndoGrouper.
func (d *Dispatcher) Execute(id string, ed kbd.Editor) handler.Result {
	startTime := time.Now()
	log := d.logger
	invocation := uuid.NewString()

	cmd, ok := d.registry.Get(id)
	if !ok {
		log.Warn("unknown command %s (invocation %s)", id, invocation)
		return handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, id))
	}

	if g, ok := ed.(UndoGrouper); ok {
		g.BeginGroup(cmd.Name)
		defer g.EndGroup()
	}

	var result handler.Result
	if d.recoverPanics {
		result = d.executeWithRecovery(cmd, ed)
	} else {
		result = cmd.Handler.Handle(ed)
	}

	switch result.Status {
	case handler.StatusNoOp:
		msg := d.translate(NoticeKey)
		if result.Message == "" {
			result.Message = msg
		}
		d.notify(result.Message)
		log.Debug("command %s had no effect (invocation %s)", id, invocation)
	case handler.StatusError:
		log.Error("command %s failed (invocation %s): %v", id, invocation, result.Error)
	default:
		log.Debug("command %s applied %d edits (invocation %s)", id, len(result.Edits), invocation)
	}

	if d.metrics != nil {
		d.metrics.RecordExecution(id, time.Since(startTime), result.Status)
	}

	return result
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(cmd Command, ed kbd.Editor) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			result = handler.Error(fmt.Errorf("%w: %s: %v", ErrPanic, cmd.ID, r))
			d.logger.Error("handler panic for %s: %v\n%s", cmd.ID, r, string(stack[:n]))

			if d.metrics != nil {
				d.metrics.RecordPanic(cmd.ID)
			}
		}
	}()

	return cmd.Handler.Handle(ed)
}

func (d *Dispatcher) translate(key string) string {
	d.mu.RLock()
	t := d.translator
	d.mu.RUnlock()

	if t == nil {
		return key
	}
	return t.Translate(key)
}

func (d *Dispatcher) notify(msg string) {
	d.mu.RLock()
	n := d.notifier
	d.mu.RUnlock()

	if n != nil {
		n.Notify(msg)
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
