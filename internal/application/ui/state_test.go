package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
)

func TestApplySnapshotReplacesEverything(t *testing.T) {
	state := NewDisplayState(entity.Metric)

	first := snapshotFor("Rome")
	state.ApplySnapshot(first, "updated")
	assert.Equal(t, "Rome", state.City())

	second := snapshotFor("Tokyo")
	second.Units = entity.Imperial
	second.Current.Units = entity.Imperial
	state.ApplySnapshot(second, "updated")

	assert.Equal(t, "Tokyo", state.City())
	assert.Equal(t, entity.Imperial, state.Units)
	assert.Same(t, second, state.Snapshot)
}

func TestApplyErrorKeepsRenderedSnapshot(t *testing.T) {
	state := NewDisplayState(entity.Metric)
	state.ApplySnapshot(snapshotFor("Rome"), "updated")

	message := state.ApplyError(model.NewFetchError(model.KindNetwork, "socket closed", nil))

	require.NotEmpty(t, message)
	assert.Equal(t, message, state.Status)
	require.NotNil(t, state.Snapshot)
	assert.Equal(t, "Rome", state.City())
}

func TestApplyErrorMessageVariesByKind(t *testing.T) {
	state := NewDisplayState(entity.Metric)
	state.SetPendingCity("Atlantis")

	notFound := state.ApplyError(model.NewFetchError(model.KindNotFound, "", nil))
	auth := state.ApplyError(model.NewFetchError(model.KindAuth, "", nil))
	network := state.ApplyError(model.NewFetchError(model.KindNetwork, "", nil))
	parse := state.ApplyError(model.NewFetchError(model.KindParse, "", nil))

	assert.NotEqual(t, notFound, auth)
	assert.NotEqual(t, auth, network)
	assert.NotEqual(t, network, parse)
	assert.NotEqual(t, notFound, network)
}

func TestApplyErrorOnEmptyStateLeavesNoSnapshot(t *testing.T) {
	state := NewDisplayState(entity.Metric)

	state.ApplyError(model.NewFetchError(model.KindNotFound, "", nil))

	assert.Nil(t, state.Snapshot)
	assert.Empty(t, state.City())
}
