package dispatcher

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/kbdwrap/internal/dispatcher/handler"
)

// Built-in command and menu identifiers.
const (
	CommandWrapSelection = "wrap-selection-with-kbd"
	CommandWrapName      = "Wrap selection with <kbd>"

	// MenuTitleKey is the translation key of the wrap menu item title.
	MenuTitleKey = "menu-item-title"
	MenuIcon     = "keyboard"
	MenuSection  = "format"
)

// Command is a named, invokable editor action.
type Command struct {
	ID      string
	Name    string
	Handler handler.Handler
}

// MenuItem is an editor context-menu entry. Title holds a translation key.
type MenuItem struct {
	Title     string
	Icon      string
	Section   string
	CommandID string
	// Separator places a divider before the item.
	Separator bool
}

// Registry holds commands by id and menu items in registration order.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
	menu     []MenuItem
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command. Ids must be unique.
func (r *Registry) Register(cmd Command) error {
	if cmd.ID == "" || cmd.Handler == nil {
		return fmt.Errorf("%w: %q", ErrInvalidCommand, cmd.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[cmd.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.ID)
	}
	r.commands[cmd.ID] = cmd
	return nil
}

// Unregister removes a command and every menu item that invokes it.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.commands, id)

	kept := r.menu[:0]
	for _, item := range r.menu {
		if item.CommandID != id {
			kept = append(kept, item)
		}
	}
	r.menu = kept
}

// AddMenuItem appends a context-menu item.
func (r *Registry) AddMenuItem(item MenuItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.menu = append(r.menu, item)
}

// Get returns the command registered under id.
func (r *Registry) Get(id string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[id]
	return cmd, ok
}

// Has returns true if a command is registered under id.
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// List returns all registered command ids, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.commands))
	for id := range r.commands {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Menu returns a copy of the context-menu items.
func (r *Registry) Menu() []MenuItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]MenuItem, len(r.menu))
	copy(items, r.menu)
	return items
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Clear removes all commands and menu items.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = make(map[string]Command)
	r.menu = nil
}

// RegisterBuiltins registers the wrap command and its menu item.
func RegisterBuiltins(r *Registry) error {
	err := r.Register(Command{
		ID:      CommandWrapSelection,
		Name:    CommandWrapName,
		Handler: handler.KbdToggle{},
	})
	if err != nil {
		return err
	}

	r.AddMenuItem(MenuItem{
		Title:     MenuTitleKey,
		Icon:      MenuIcon,
		Section:   MenuSection,
		CommandID: CommandWrapSelection,
		Separator: true,
	})
	return nil
}
