package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Document is the on-disk shape of the overlay settings. Keys are written in
// field order.
type Document struct {
	Draggable     bool `mapstructure:"draggable" yaml:"draggable" toml:"draggable" json:"draggable" jsonschema:"description=Whether the clock can be moved with the pointer"`
	Hidable       bool `mapstructure:"hidable" yaml:"hidable" toml:"hidable" json:"hidable" jsonschema:"description=Hide the clock text while the pointer is over it"`
	AlwaysShowTop bool `mapstructure:"alwaysShowTop" yaml:"alwaysShowTop" toml:"alwaysShowTop" json:"alwaysShowTop" jsonschema:"description=Keep the clock above other windows"`
	// X and Y are the saved top-left corner. Absent or null lets the window
	// system place the clock.
	X         *int   `mapstructure:"x" yaml:"x" toml:"x,omitempty" json:"x,omitempty" jsonschema:"description=Saved horizontal position"`
	Y         *int   `mapstructure:"y" yaml:"y" toml:"y,omitempty" json:"y,omitempty" jsonschema:"description=Saved vertical position"`
	FontSize  int    `mapstructure:"fontSize" yaml:"fontSize" toml:"fontSize" json:"fontSize" jsonschema:"minimum=1,default=100,description=Clock text size in pixels"`
	FontColor string `mapstructure:"fontColor" yaml:"fontColor" toml:"fontColor" json:"fontColor" jsonschema:"minLength=1,default=#dddddd,description=Clock text colour (#rgb or #rrggbb or a colour name)"`
}

// requiredKeys must be present in every document. x and y are optional.
var requiredKeys = []string{"draggable", "hidable", "alwaysShowTop", "fontSize", "fontColor"}

// JSONSchema returns the JSON schema of the settings document, indented.
func JSONSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Document{})

	schema.ID = "https://github.com/bnema/deskclock/config.schema.json"
	schema.Title = "deskclock settings"
	schema.Description = "Settings of the deskclock desktop clock overlay"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
