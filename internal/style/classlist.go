package style

import (
	"strings"
	"sync"
)

// ClassList is an ordered set of class names, like an element's classList.
type ClassList struct {
	mu      sync.RWMutex
	classes []string
}

// NewClassList creates a class list holding the given names.
func NewClassList(names ...string) *ClassList {
	cl := &ClassList{}
	cl.Add(names...)
	return cl
}

// Add appends names not already present.
func (cl *ClassList) Add(names ...string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	for _, name := range names {
		if name == "" || cl.indexLocked(name) >= 0 {
			continue
		}
		cl.classes = append(cl.classes, name)
	}
}

// Remove deletes names; absent names are ignored.
func (cl *ClassList) Remove(names ...string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	for _, name := range names {
		if i := cl.indexLocked(name); i >= 0 {
			cl.classes = append(cl.classes[:i], cl.classes[i+1:]...)
		}
	}
}

// Contains reports whether name is present.
func (cl *ClassList) Contains(name string) bool {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return cl.indexLocked(name) >= 0
}

// List returns a copy of the class names in insertion order.
func (cl *ClassList) List() []string {
	cl.mu.RLock()
	defer cl.mu.RUnlock()

	out := make([]string, len(cl.classes))
	copy(out, cl.classes)
	return out
}

// Len returns the number of classes.
func (cl *ClassList) Len() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.classes)
}

// String returns the names joined by spaces, as in a class attribute.
func (cl *ClassList) String() string {
	return strings.Join(cl.List(), " ")
}

func (cl *ClassList) indexLocked(name string) int {
	for i, c := range cl.classes {
		if c == name {
			return i
		}
	}
	return -1
}
