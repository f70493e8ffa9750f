package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/deskclock/internal/domain/entity"
)

func TestNewClockStyle(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		color   string
		want    entity.ClockStyle
		wantErr bool
	}{
		{name: "valid", size: 64, color: "#ff8800", want: entity.ClockStyle{Size: 64, Color: "#ff8800"}},
		{name: "trims color", size: 12, color: "  red ", want: entity.ClockStyle{Size: 12, Color: "red"}},
		{name: "zero size", size: 0, color: "red", wantErr: true},
		{name: "negative size", size: -5, color: "red", wantErr: true},
		{name: "blank color", size: 10, color: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entity.NewClockStyle(tt.size, tt.color)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidClockStyle)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockStyle_String(t *testing.T) {
	assert.Equal(t, "100px #dddddd", entity.DefaultClockStyle().String())
}
