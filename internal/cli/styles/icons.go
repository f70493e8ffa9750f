package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconClock   = "\uf017" // clock
	IconConfig  = "\ue615" // config
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconLock    = "\uf023" // lock
	IconEye     = "\uf06e" // eye
	IconFont    = "\uf031" // font
	IconMove    = "\uf047" // arrows

	// Checkboxes
	IconCheckboxEmpty   = "\uf096" // unchecked
	IconCheckboxChecked = "\uf046" // checked

	// UI
	IconCursor = "\uf054" // chevron-right
)

// Checkbox returns the checkbox icon for on.
func Checkbox(on bool) string {
	if on {
		return IconCheckboxChecked
	}
	return IconCheckboxEmpty
}
