package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/deskclock/internal/domain/entity"
)

func TestPoint_Coords(t *testing.T) {
	x, y, ok := entity.NewPoint(-20, 40).Coords()
	assert.True(t, ok)
	assert.Equal(t, -20, x)
	assert.Equal(t, 40, y)

	_, _, ok = entity.UnsetPoint().Coords()
	assert.False(t, ok)
}

func TestPoint_HalfSetIsNotSet(t *testing.T) {
	x := 5
	p := entity.Point{X: &x}

	assert.False(t, p.IsSet())
	assert.Equal(t, "(5, unset)", p.String())
}

func TestPoint_Equal(t *testing.T) {
	assert.True(t, entity.NewPoint(1, 2).Equal(entity.NewPoint(1, 2)))
	assert.False(t, entity.NewPoint(1, 2).Equal(entity.NewPoint(2, 1)))
	assert.True(t, entity.UnsetPoint().Equal(entity.Point{}))
	assert.False(t, entity.UnsetPoint().Equal(entity.NewPoint(0, 0)))
}
