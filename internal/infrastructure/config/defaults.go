package config

import "github.com/bnema/deskclock/internal/domain/entity"

// DefaultDocument returns the document written on first run.
func DefaultDocument() *Document {
	return newDocument(entity.DefaultSettings())
}

func newDocument(s *entity.Settings) *Document {
	fields := s.Fields()
	return &Document{
		Draggable:     fields.Draggable,
		Hidable:       fields.Hidable,
		AlwaysShowTop: fields.AlwaysShowTop,
		X:             fields.Position.X,
		Y:             fields.Position.Y,
		FontSize:      fields.ClockStyle.Size,
		FontColor:     fields.ClockStyle.Color,
	}
}

// Settings converts the document into the domain aggregate.
// A position with only one component is treated as unset.
func (d *Document) Settings() (*entity.Settings, error) {
	position := entity.UnsetPoint()
	if d.X != nil && d.Y != nil {
		position = entity.NewPoint(*d.X, *d.Y)
	}

	style, err := entity.NewClockStyle(d.FontSize, d.FontColor)
	if err != nil {
		return nil, err
	}

	return entity.RestoreSettings(entity.SettingsFields{
		Draggable:     d.Draggable,
		Hidable:       d.Hidable,
		AlwaysShowTop: d.AlwaysShowTop,
		Position:      position,
		ClockStyle:    style,
	})
}
