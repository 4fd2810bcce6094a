package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/tiles"
)

func TestClassifierFor(t *testing.T) {
	g := world.NewGrid(1, 1)
	g.Set(0, 0, 1)

	occupancy, err := classifierFor("occupancy")
	require.NoError(t, err)
	assert.Equal(t, tiles.Classify(g, 0, 0), occupancy(g, 0, 0))

	walls, err := classifierFor("walls")
	require.NoError(t, err)
	assert.Equal(t, tiles.PassageMask(g, 0, 0), walls(g, 0, 0))

	_, err = classifierFor("isometric")
	assert.Error(t, err)
}
