package engine

import (
	"sync"

	"github.com/lixenwraith/buildings/core"
)

// EntityCommand is a deferred operation against one entity
// Applied by World.ApplyCommands after the step that queued it
type EntityCommand interface {
	Apply(w *World, e core.Entity)
}

// EntityCommandFunc adapts a function to EntityCommand
type EntityCommandFunc func(w *World, e core.Entity)

func (f EntityCommandFunc) Apply(w *World, e core.Entity) {
	f(w, e)
}

// PendingCommand pairs a command with its target
type PendingCommand struct {
	Entity  core.Entity
	Command EntityCommand
}

// CommandQueue buffers entity commands in submission order
// Locked for parity with the stores; startup itself pushes from one goroutine
type CommandQueue struct {
	mu      sync.Mutex
	pending []PendingCommand
}

// NewCommandQueue creates an empty queue
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{
		pending: make([]PendingCommand, 0, 16),
	}
}

// Push queues cmd against e
func (q *CommandQueue) Push(e core.Entity, cmd EntityCommand) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, PendingCommand{Entity: e, Command: cmd})
}

// Len returns the number of queued commands
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain returns all queued commands in FIFO order and empties the queue
func (q *CommandQueue) Drain() []PendingCommand {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = make([]PendingCommand, 0, 16)
	return out
}
