package espalier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okvist/espalier"
)

func TestTransition_Programmatic(t *testing.T) {
	m, j := newPair(t)

	err := espalier.Transition[*stateB](m)
	require.NoError(t, err)

	assert.Equal(t, "stateB", m.CurrentStateName())
	assert.Equal(t, []string{"exit A", "enter B"}, j.entries)
}

func TestTransition_UndeclaredState(t *testing.T) {
	m, j := newPair(t)

	err := espalier.Transition[*namedState](m)

	var unknown *espalier.UnknownStateError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "namedState", unknown.StateType)
	assert.Equal(t, "stateA", m.CurrentStateName(), "a failed transition leaves the machine untouched")
	assert.Empty(t, j.entries)
}

func TestDirective_Execute(t *testing.T) {
	m, j := newPair(t)

	require.NoError(t, espalier.To[*stateB]().Execute(m))
	assert.Equal(t, "stateB", m.CurrentStateName())

	j.entries = nil
	require.NoError(t, espalier.Stay().Execute(m))
	assert.Equal(t, "stateB", m.CurrentStateName())
	assert.Empty(t, j.entries, "the null directive has no observable effect")
}

func TestEventName_Derivation(t *testing.T) {
	assert.Equal(t, "ping", espalier.EventName(ping{}))
}

type namedEvent struct{ espalier.EventTag }

func (namedEvent) Name() string { return "knock" }

func TestEventName_Override(t *testing.T) {
	assert.Equal(t, "knock", espalier.EventName(namedEvent{}))
}

func TestStateName_Derivation(t *testing.T) {
	assert.Equal(t, "stateA", espalier.StateName(&stateA{}))
	assert.Equal(t, "VeryClosed", espalier.StateName(&namedState{}))
}
