package script_test

import (
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okvist/espalier"
	"github.com/okvist/espalier/pkg/script"
)

type open struct {
	espalier.EventTag
	Force bool `mapstructure:"force"`
}

type shut struct{ espalier.EventTag }

type doorClosed struct{ espalier.StateTag }
type doorOpen struct{ espalier.StateTag }

func newDoor(t *testing.T) *espalier.Machine {
	t.Helper()

	b := espalier.NewBuilder()
	b.Add(&doorClosed{}, &doorOpen{})
	espalier.On[*doorClosed, open, *doorOpen](b)
	espalier.On[*doorOpen, shut, *doorClosed](b)

	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func newRegistry() *script.Registry {
	reg := script.NewRegistry()
	script.Register[open](reg, "open")
	script.Register[shut](reg, "close")
	return reg
}

func TestParse(t *testing.T) {
	s, err := script.Parse([]byte(`
steps:
  - event: open
    with:
      force: true
  - event: close
`))
	require.NoError(t, err)
	require.Len(t, s.Steps, 2)
	assert.Equal(t, "open", s.Steps[0].Event)
	assert.Equal(t, map[string]any{"force": true}, s.Steps[0].With)
	assert.Equal(t, "close", s.Steps[1].Event)
}

func TestParse_Invalid(t *testing.T) {
	_, err := script.Parse([]byte(`steps: []`))
	assert.ErrorContains(t, err, "no steps")

	_, err = script.Parse([]byte("steps:\n  - with:\n      x: 1\n"))
	assert.ErrorContains(t, err, "missing event name")

	_, err = script.Parse([]byte(`{`))
	assert.ErrorContains(t, err, "parse script")
}

func TestRegistry_New(t *testing.T) {
	reg := newRegistry()

	ev, err := reg.New("open", map[string]any{"force": true})
	require.NoError(t, err)
	assert.Equal(t, open{Force: true}, ev)

	_, err = reg.New("slam", nil)
	assert.ErrorContains(t, err, `unknown event "slam"`)
}

func TestRegistry_Names(t *testing.T) {
	assert.Equal(t, []string{"close", "open"}, newRegistry().Names())
}

func TestRunner_Run(t *testing.T) {
	m := newDoor(t)
	runner := script.NewRunner(newRegistry(), slogt.New(t))

	s, err := script.Parse([]byte(`
steps:
  - event: open
  - event: open
  - event: close
`))
	require.NoError(t, err)

	results, err := runner.Run(m, s)
	require.NoError(t, err)

	assert.Equal(t, []script.Result{
		{Event: "open", State: "doorOpen"},
		{Event: "open", State: "doorOpen"},
		{Event: "close", State: "doorClosed"},
	}, results)
}

func TestRunner_UnknownEvent(t *testing.T) {
	m := newDoor(t)
	runner := script.NewRunner(newRegistry(), nil)

	s, err := script.Parse([]byte("steps:\n  - event: open\n  - event: explode\n"))
	require.NoError(t, err)

	results, err := runner.Run(m, s)
	assert.ErrorContains(t, err, "step 2")
	assert.Len(t, results, 1, "steps before the failure are still applied")
	assert.Equal(t, "doorOpen", m.CurrentStateName())
}
