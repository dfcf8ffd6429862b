package engine

import (
	"errors"
	"fmt"
	"log"
)

var (
	// ErrUnknownStep is returned when a step depends on an undeclared step
	ErrUnknownStep = errors.New("unknown startup step")

	// ErrDuplicateStep is returned when two steps share a name
	ErrDuplicateStep = errors.New("duplicate startup step")

	// ErrStepCycle is returned when step dependencies form a cycle
	ErrStepCycle = errors.New("startup step dependency cycle")
)

// StepFunc is one synchronous, run-to-completion startup step
type StepFunc func(w *World) error

// Step is a named entry in a Schedule
type Step struct {
	Name  string
	Run   StepFunc
	after []string
}

// After declares that the step runs after the named steps
func (s *Step) After(names ...string) *Step {
	s.after = append(s.after, names...)
	return s
}

// Schedule runs startup steps in dependency order
// Declaration order breaks ties between independent steps
type Schedule struct {
	steps []*Step
}

// NewSchedule creates an empty schedule
func NewSchedule() *Schedule {
	return &Schedule{}
}

// Add declares a step and returns it for dependency chaining
func (s *Schedule) Add(name string, run StepFunc) *Step {
	step := &Step{Name: name, Run: run}
	s.steps = append(s.steps, step)
	return step
}

// Order resolves the execution order without running anything
func (s *Schedule) Order() ([]*Step, error) {
	byName := make(map[string]*Step, len(s.steps))
	for _, step := range s.steps {
		if _, dup := byName[step.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateStep, step.Name)
		}
		byName[step.Name] = step
	}
	for _, step := range s.steps {
		for _, dep := range step.after {
			if _, ok := byName[dep]; !ok {
				return nil, fmt.Errorf("%w: %s (required by %s)", ErrUnknownStep, dep, step.Name)
			}
		}
	}

	// Repeated scan for the first ready step, small N
	done := make(map[string]bool, len(s.steps))
	order := make([]*Step, 0, len(s.steps))
	for len(order) < len(s.steps) {
		progressed := false
		for _, step := range s.steps {
			if done[step.Name] || !ready(step, done) {
				continue
			}
			done[step.Name] = true
			order = append(order, step)
			progressed = true
			break
		}
		if !progressed {
			return nil, ErrStepCycle
		}
	}
	return order, nil
}

func ready(step *Step, done map[string]bool) bool {
	for _, dep := range step.after {
		if !done[dep] {
			return false
		}
	}
	return true
}

// Run executes every step in order, flushing the command queue after each
// The first failing step aborts the schedule
func (s *Schedule) Run(w *World) error {
	order, err := s.Order()
	if err != nil {
		return err
	}

	for _, step := range order {
		log.Printf("startup step %s", step.Name)
		if err := step.Run(w); err != nil {
			return fmt.Errorf("step %s: %w", step.Name, err)
		}
		if n := w.ApplyCommands(); n > 0 {
			log.Printf("startup step %s applied %d command(s)", step.Name, n)
		}
	}
	return nil
}
