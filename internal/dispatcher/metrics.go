package dispatcher

import (
	"sync"
	"time"

	"github.com/dshills/kbdwrap/internal/dispatcher/handler"
)

// Metrics collects execution statistics per command.
type Metrics struct {
	mu sync.RWMutex

	commands map[string]*CommandMetrics

	totalExecutions uint64
	totalNoOps      uint64
	totalErrors     uint64
	totalPanics     uint64
}

// CommandMetrics holds metrics for a single command.
type CommandMetrics struct {
	ID            string
	Executions    uint64
	NoOps         uint64
	Errors        uint64
	TotalDuration time.Duration
	LastStatus    handler.ResultStatus
	LastExecuted  time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		commands: make(map[string]*CommandMetrics),
	}
}

// RecordExecution records one command execution.
func (m *Metrics) RecordExecution(id string, duration time.Duration, status handler.ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalExecutions++

	cm := m.commands[id]
	if cm == nil {
		cm = &CommandMetrics{ID: id}
		m.commands[id] = cm
	}

	cm.Executions++
	cm.TotalDuration += duration
	cm.LastStatus = status
	cm.LastExecuted = time.Now()

	switch status {
	case handler.StatusNoOp:
		m.totalNoOps++
		cm.NoOps++
	case handler.StatusError:
		m.totalErrors++
		cm.Errors++
	}
}

// RecordPanic records a recovered handler panic.
func (m *Metrics) RecordPanic(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalPanics++
}

// TotalExecutions returns the number of executions.
func (m *Metrics) TotalExecutions() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalExecutions
}

// TotalNoOps returns the number of executions that changed nothing.
func (m *Metrics) TotalNoOps() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalNoOps
}

// TotalErrors returns the number of failed executions.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// TotalPanics returns the number of recovered panics.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}

// CommandStats returns a copy of the metrics for one command, or nil.
func (m *Metrics) CommandStats(id string) *CommandMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cm := m.commands[id]
	if cm == nil {
		return nil
	}
	c := *cm
	return &c
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.commands = make(map[string]*CommandMetrics)
	m.totalExecutions = 0
	m.totalNoOps = 0
	m.totalErrors = 0
	m.totalPanics = 0
}
