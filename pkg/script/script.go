// Package script replays named event sequences against a machine. Scripts
// are YAML documents listing events by registered name, with optional typed
// payloads:
//
//	steps:
//	  - event: open
//	  - event: close
//	    with:
//	      force: true
package script

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okvist/espalier"
	"github.com/okvist/espalier/internal/logging"
)

// Step is one scripted dispatch.
type Step struct {
	Event string         `yaml:"event"`
	With  map[string]any `yaml:"with,omitempty"`
}

// Script is an ordered event sequence.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("script has no steps")
	}
	for i, step := range s.Steps {
		if step.Event == "" {
			return nil, fmt.Errorf("step %d: missing event name", i+1)
		}
	}
	return &s, nil
}

// Load reads a script from a file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data)
}

// Result records the machine's state after one step.
type Result struct {
	Event string
	State string
}

// Runner replays scripts against a machine.
type Runner struct {
	registry *Registry
	logger   *slog.Logger
}

// NewRunner creates a runner resolving event names through registry. A nil
// logger discards output.
func NewRunner(registry *Registry, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{registry: registry, logger: logger}
}

// Run dispatches each step in order and reports the state reached after
// every dispatch. An unknown event name or an undecodable payload aborts the
// replay; dispatch itself cannot fail.
func (r *Runner) Run(m *espalier.Machine, s *Script) ([]Result, error) {
	results := make([]Result, 0, len(s.Steps))
	for i, step := range s.Steps {
		event, err := r.registry.New(step.Event, step.With)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		m.Dispatch(event)

		state := m.CurrentStateName()
		r.logger.Info("dispatched", "event", step.Event, "state", state)
		results = append(results, Result{Event: step.Event, State: state})
	}
	return results, nil
}
