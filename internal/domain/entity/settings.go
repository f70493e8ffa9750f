package entity

// ReloadState tracks whether the live overlay window is out of date with the
// window attributes held by the settings.
type ReloadState uint8

const (
	// ReloadClean means the window reflects the current attributes.
	ReloadClean ReloadState = iota
	// ReloadPending means the window must be re-flagged or recreated.
	ReloadPending
)

func (r ReloadState) String() string {
	if r == ReloadPending {
		return "reload-pending"
	}
	return "clean"
}

// SettingsFields is the persisted shape of the overlay settings.
type SettingsFields struct {
	Draggable     bool
	Hidable       bool
	AlwaysShowTop bool
	Position      Point
	ClockStyle    ClockStyle
}

// Settings is the overlay's user preferences plus the window attribute set
// derived from them.
//
// The attribute set holds the base attributes, AttrStaysOnTop iff the overlay
// is always on top, and AttrTransparentForInput iff it is not draggable. It is
// only changed by the toggles, which keep those two relations intact.
type Settings struct {
	draggable  bool
	hidable    bool
	attributes WindowAttributeSet
	position   Point
	clockStyle ClockStyle
	reload     ReloadState
}

// DefaultSettings returns the settings of a new installation: not draggable,
// not hidable, always on top, no saved position, 100px #dddddd text.
func DefaultSettings() *Settings {
	return newSettings(SettingsFields{
		AlwaysShowTop: true,
		Position:      UnsetPoint(),
		ClockStyle:    DefaultClockStyle(),
	})
}

// RestoreSettings rebuilds settings from their persisted fields.
// The reload state of restored settings is always clean.
func RestoreSettings(fields SettingsFields) (*Settings, error) {
	if err := fields.ClockStyle.Validate(); err != nil {
		return nil, err
	}
	return newSettings(fields), nil
}

func newSettings(fields SettingsFields) *Settings {
	attrs := NewWindowAttributeSet(BaseAttributes()...)
	if fields.AlwaysShowTop {
		attrs.Add(AttrStaysOnTop)
	}
	if !fields.Draggable {
		attrs.Add(AttrTransparentForInput)
	}

	return &Settings{
		draggable:  fields.Draggable,
		hidable:    fields.Hidable,
		attributes: attrs,
		position:   fields.Position.clone(),
		clockStyle: fields.ClockStyle,
		reload:     ReloadClean,
	}
}

// Fields returns the persisted view of s.
func (s *Settings) Fields() SettingsFields {
	return SettingsFields{
		Draggable:     s.draggable,
		Hidable:       s.hidable,
		AlwaysShowTop: s.AlwaysShowTop(),
		Position:      s.position.clone(),
		ClockStyle:    s.clockStyle,
	}
}

// Clone returns an independent copy, including the reload state.
func (s *Settings) Clone() *Settings {
	c := *s
	c.position = s.position.clone()
	return &c
}

func (s *Settings) Draggable() bool { return s.draggable }

func (s *Settings) Hidable() bool { return s.hidable }

// AlwaysShowTop reports whether the window stays above others.
func (s *Settings) AlwaysShowTop() bool {
	return s.attributes.Contains(AttrStaysOnTop)
}

func (s *Settings) Position() Point { return s.position.clone() }

func (s *Settings) ClockStyle() ClockStyle { return s.clockStyle }

// Attributes returns a copy of the current window attribute set.
func (s *Settings) Attributes() WindowAttributeSet { return s.attributes }

// WindowAttributes returns the combined attribute mask.
func (s *Settings) WindowAttributes() AttributeMask {
	return s.attributes.Combined()
}

func (s *Settings) ReloadState() ReloadState { return s.reload }

// ReloadRequired reports whether the window must be re-flagged.
func (s *Settings) ReloadRequired() bool {
	return s.reload == ReloadPending
}

// ToggleDraggable flips draggable and, with it, input transparency.
func (s *Settings) ToggleDraggable() {
	s.draggable = !s.draggable
	s.attributes.Toggle(AttrTransparentForInput)
	s.reload = ReloadPending
}

// ToggleHidable flips hide-on-hover. The window itself is unaffected.
func (s *Settings) ToggleHidable() {
	s.hidable = !s.hidable
}

// ToggleAlwaysShowTop flips the stays-on-top attribute.
func (s *Settings) ToggleAlwaysShowTop() {
	s.attributes.Toggle(AttrStaysOnTop)
	s.reload = ReloadPending
}

// SavePosition records the window's top-left corner.
func (s *Settings) SavePosition(p Point) {
	s.position = p.clone()
}

// SetClockStyle replaces the clock style after validating it.
func (s *Settings) SetClockStyle(style ClockStyle) error {
	if err := style.Validate(); err != nil {
		return err
	}
	s.clockStyle = style
	return nil
}

// MarkReloaded acknowledges that the window reflects the current attributes.
func (s *Settings) MarkReloaded() {
	s.reload = ReloadClean
}
