package nanogui

// Icon IDs below this value refer to textures loaded from image files;
// IDs at or above it are codepoints in an icon font such as Entypo.
const fontIconThreshold = 1024

// IsImageIcon reports whether an icon ID refers to a loaded texture.
func IsImageIcon(icon int) bool {
	return icon < fontIconThreshold
}

// IsFontIcon reports whether an icon ID is a font-based icon codepoint.
func IsFontIcon(icon int) bool {
	return icon >= fontIconThreshold
}

// IconString returns the UTF-8 string for a font-based icon, ready to
// be passed to text drawing for glyph lookup. It returns the empty
// string for image icons, which have no codepoint.
func IconString(icon int) string {
	if !IsFontIcon(icon) {
		return ""
	}
	return CodepointString(int64(icon))
}
