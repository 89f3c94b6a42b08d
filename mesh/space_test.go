// SPDX-License-Identifier: MIT

package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgen/core"
	"github.com/katalvlaran/lvlgen/mesh"
)

func TestNewSpace_Validation(t *testing.T) {
	_, err := mesh.NewSpace(0, 10)
	assert.ErrorIs(t, err, mesh.ErrInvalidSize)

	_, err = mesh.NewSpace(3, 0)
	assert.ErrorIs(t, err, mesh.ErrInvalidSpacing)

	s, err := mesh.NewSpace(3, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Size)
	assert.Equal(t, 10, s.Spacing)
	assert.Equal(t, 40, s.Extent())
	assert.Equal(t, 9, s.CellCount())
}

func TestSpace_PointAndCellOf(t *testing.T) {
	s, err := mesh.NewSpace(3, 10)
	require.NoError(t, err)

	assert.Equal(t, core.V(10, 10), s.Point(mesh.C(0, 0)))
	assert.Equal(t, core.V(30, 20), s.Point(mesh.C(2, 1)))

	c, ok := s.CellOf(core.V(30, 20))
	require.True(t, ok)
	assert.Equal(t, mesh.C(2, 1), c)

	_, ok = s.CellOf(core.V(15, 10)) // between mesh positions
	assert.False(t, ok)
	_, ok = s.CellOf(core.V(0, 0)) // border row/column
	assert.False(t, ok)
	_, ok = s.CellOf(core.V(40, 10)) // one past the last cell
	assert.False(t, ok)
}

func TestSpace_Contains(t *testing.T) {
	s := mesh.Space{Size: 3, Spacing: 1}
	assert.True(t, s.Contains(mesh.C(0, 0)))
	assert.True(t, s.Contains(mesh.C(2, 2)))
	assert.False(t, s.Contains(mesh.C(3, 0)))
	assert.False(t, s.Contains(mesh.C(0, -1)))
}

func TestSpace_Clamp(t *testing.T) {
	s := mesh.Space{Size: 3, Spacing: 10}
	assert.Equal(t, core.V(10, 30), s.Clamp(core.V(4, 37)))
	assert.Equal(t, core.V(25, 10), s.Clamp(core.V(25, -2)))
	assert.Equal(t, core.V(20, 20), s.Clamp(core.V(20, 20)))
}
