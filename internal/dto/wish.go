package dto

// WishLevels maps the labels shown on the detail page to the stored
// wish level. "Not interested" is an explicit choice and maps to 0.
var WishLevels = map[string]int{
	"Not interested":  0,
	"Maybe I'll play": 1,
	"I want to play":  2,
	"I must play!":    3,
}

// WishLabels lists the labels in level order for rendering the form.
var WishLabels = []string{
	"Not interested",
	"Maybe I'll play",
	"I want to play",
	"I must play!",
}

// WishLabel returns the label for a stored level, or the empty string
// for a level outside the known range.
func WishLabel(level int) string {
	if level < 0 || level >= len(WishLabels) {
		return ""
	}
	return WishLabels[level]
}
