// Package app wires the toggle command, settings, translations and styling
// into one application and manages its lifecycle.
//
// Loading the application registers the wrap command and its menu entry and
// applies the configured style class; Shutdown reverses both.
package app

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dshills/kbdwrap/internal/config"
	"github.com/dshills/kbdwrap/internal/config/loader"
	"github.com/dshills/kbdwrap/internal/config/watcher"
	"github.com/dshills/kbdwrap/internal/dispatcher"
	"github.com/dshills/kbdwrap/internal/dispatcher/handler"
	"github.com/dshills/kbdwrap/internal/i18n"
	"github.com/dshills/kbdwrap/internal/kbd"
	"github.com/dshills/kbdwrap/internal/style"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the settings file. Defaults to config.DefaultPath().
	ConfigPath string

	// Locale overrides the host language used for translations.
	Locale string

	// LogLevel sets the logging verbosity.
	LogLevel string

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer

	// Notifier receives user-facing notices.
	Notifier dispatcher.Notifier

	// DisableEnv ignores environment overrides of settings.
	DisableEnv bool
}

// Application owns the command registry, settings and style state.
type Application struct {
	mu sync.RWMutex

	opts Options

	logger     *Logger
	config     *config.Config
	translator *i18n.Translator
	classes    *style.ClassList
	registry   *dispatcher.Registry
	dispatcher *dispatcher.Dispatcher

	document *Document
	notices  []string

	closed bool
}

// New creates and loads an Application.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		classes: style.NewClassList(),
	}

	app.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(opts.LogLevel),
		Output: opts.LogOutput,
		Prefix: "kbdwrap",
	})

	locale := opts.Locale
	if locale == "" {
		locale = i18n.HostLanguage()
	}
	app.translator = i18n.New(locale)

	app.initConfig()
	if err := app.initCommands(); err != nil {
		return nil, err
	}

	app.logger.WithField("locale", app.translator.Locale()).
		Debug("loaded with style %s", app.config.Settings().Style())
	return app, nil
}

// initConfig loads settings; a broken settings file is logged and the
// defaults are used.
func (app *Application) initConfig() {
	cfgOpts := []config.Option{config.WithPath(app.opts.ConfigPath)}
	if app.opts.DisableEnv {
		cfgOpts = append(cfgOpts, config.WithEnv(nil))
	} else {
		cfgOpts = append(cfgOpts, config.WithEnv(loader.NewEnvLoader()))
	}
	app.config = config.New(cfgOpts...)
	app.config.OnChange(app.applySettings)

	if err := app.config.Load(); err != nil {
		app.logger.WithComponent("config").Warn("using default settings: %v", err)
	}
	app.applySettings(app.config.Settings())
}

func (app *Application) initCommands() error {
	app.registry = dispatcher.NewRegistry()
	if err := dispatcher.RegisterBuiltins(app.registry); err != nil {
		return NewOperationError("register", dispatcher.CommandWrapSelection, err)
	}

	app.dispatcher = dispatcher.New(app.registry,
		dispatcher.WithLogger(app.logger.WithComponent("dispatcher")),
		dispatcher.WithTranslator(app.translator),
		dispatcher.WithNotifier(dispatcher.NotifierFunc(app.notify)),
		dispatcher.WithMetrics(),
	)
	return nil
}

func (app *Application) applySettings(s config.Settings) {
	st := s.Style()
	style.Apply(app.classes, st)
	app.logger.WithComponent("style").Debug("applied %s", st.ClassName())
}

func (app *Application) notify(msg string) {
	app.mu.Lock()
	app.notices = append(app.notices, msg)
	n := app.opts.Notifier
	app.mu.Unlock()

	if n != nil {
		n.Notify(msg)
	}
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Config returns the settings manager.
func (app *Application) Config() *config.Config {
	return app.config
}

// Translator returns the translator.
func (app *Application) Translator() *i18n.Translator {
	return app.translator
}

// ClassList returns the body classes the style is applied to.
func (app *Application) ClassList() *style.ClassList {
	return app.classes
}

// Registry returns the command registry.
func (app *Application) Registry() *dispatcher.Registry {
	return app.registry
}

// Dispatcher returns the command dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Style returns the active style.
func (app *Application) Style() style.Style {
	return app.config.Settings().Style()
}

// Notices returns the notices shown so far.
func (app *Application) Notices() []string {
	app.mu.RLock()
	defer app.mu.RUnlock()

	out := make([]string, len(app.notices))
	copy(out, app.notices)
	return out
}

// OpenFile reads path and makes it the active document.
func (app *Application) OpenFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}
	return app.open(path, content)
}

// OpenReader reads r and makes it the active document. The document has no
// path and cannot be saved.
func (app *Application) OpenReader(r io.Reader) (*Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, NewOperationError("open", "<stdin>", err)
	}
	return app.open("", content)
}

func (app *Application) open(path string, content []byte) (*Document, error) {
	doc, err := NewDocument(path, content)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	app.mu.Lock()
	app.document = doc
	app.mu.Unlock()

	app.logger.WithField("path", doc.Name).Debug("opened %d lines", doc.Engine.LineCount())
	return doc, nil
}

// Document returns the active document, or nil.
func (app *Application) Document() *Document {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.document
}

// Toggle runs the wrap command against ed. Nothing acted yields a no-op
// result and a notice.
func (app *Application) Toggle(ed kbd.Editor) handler.Result {
	app.mu.RLock()
	closed := app.closed
	app.mu.RUnlock()

	if closed {
		return handler.Error(ErrShutdown)
	}
	return app.dispatcher.Execute(dispatcher.CommandWrapSelection, ed)
}

// ToggleDocument runs Toggle against the active document.
func (app *Application) ToggleDocument() (handler.Result, error) {
	doc := app.Document()
	if doc == nil {
		return handler.Error(ErrNoActiveDocument), ErrNoActiveDocument
	}
	if err := doc.Engine.ValidateSelections(); err != nil {
		return handler.Error(err), NewOperationError("toggle", doc.Name, err)
	}
	res := app.Toggle(doc.Engine)
	if res.IsError() {
		return res, NewOperationError("toggle", doc.Name, res.Error)
	}
	return res, nil
}

// SetStyle changes the style and saves the settings.
func (app *Application) SetStyle(name string) error {
	if err := app.config.SetStyle(name); err != nil {
		return NewOperationError("set style", name, err)
	}
	if err := app.config.Save(); err != nil {
		return NewOperationError("save settings", app.config.Path(), err)
	}
	return nil
}

// StyleOption is one entry of the style setting dropdown.
type StyleOption struct {
	Style    style.Style
	Label    string
	Selected bool
}

// SettingsTitle returns the translated settings heading.
func (app *Application) SettingsTitle() string {
	return app.translator.Translate(i18n.KeySettingsTitle)
}

// StyleOptions returns the styles with translated labels.
func (app *Application) StyleOptions() []StyleOption {
	current := app.Style()
	all := style.All()
	opts := make([]StyleOption, len(all))
	for i, s := range all {
		opts[i] = StyleOption{
			Style:    s,
			Label:    app.translator.Translate(s.LabelKey()),
			Selected: s == current,
		}
	}
	return opts
}

// MenuEntry is a menu item with its title translated.
type MenuEntry struct {
	Title     string
	Icon      string
	Section   string
	CommandID string
	Separator bool
}

// Menu returns the registered menu items.
func (app *Application) Menu() []MenuEntry {
	items := app.registry.Menu()
	entries := make([]MenuEntry, len(items))
	for i, item := range items {
		entries[i] = MenuEntry{
			Title:     app.translator.Translate(item.Title),
			Icon:      item.Icon,
			Section:   item.Section,
			CommandID: item.CommandID,
			Separator: item.Separator,
		}
	}
	return entries
}

// Watch reloads the settings whenever the settings file changes, until ctx
// is cancelled.
func (app *Application) Watch(ctx context.Context) error {
	w, err := watcher.New(watcher.WithDebounce(100 * time.Millisecond))
	if err != nil {
		return NewOperationError("watch", app.config.Path(), err)
	}
	defer w.Close()

	if err := w.Watch(app.config.Path()); err != nil {
		return NewOperationError("watch", app.config.Path(), err)
	}

	log := app.logger.WithComponent("watcher")
	w.OnChange(func(e watcher.Event) {
		if e.Op == watcher.OpRemove || e.Op == watcher.OpRename {
			log.Debug("settings file %s: %s", e.Op, e.Path)
			return
		}
		if err := app.config.Load(); err != nil {
			log.Warn("reload failed, keeping current settings: %v", err)
			return
		}
		log.Info("settings reloaded, style %s", app.Style())
	})
	w.OnError(func(err error) {
		log.Error("watch error: %v", err)
	})

	return w.Run(ctx)
}

// Shutdown removes the style classes and unregisters the command. It is
// safe to call more than once.
func (app *Application) Shutdown() {
	app.mu.Lock()
	if app.closed {
		app.mu.Unlock()
		return
	}
	app.closed = true
	app.mu.Unlock()

	style.Clear(app.classes)
	app.registry.Unregister(dispatcher.CommandWrapSelection)
	app.logger.Debug("shut down")
}

// IsShutdown reports whether Shutdown has been called.
func (app *Application) IsShutdown() bool {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.closed
}
