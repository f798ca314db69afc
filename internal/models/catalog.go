package models

import "slices"

// Option keys are stable, language-independent names for each selectable
// trait. Records still reference options by position, so the order of these
// lists is part of the stored format: append new options, never reorder.
var categoryOptions = map[CategoryID][]string{
	CategorySensor: {
		"bright_light",
		"loud_noise",
		"itchy_clothes",
		"smells",
	},
	CategoryBattery: {
		"tires_easily",
		"always_running",
		"needs_nap",
		"own_pace",
	},
	CategoryCommunication: {
		"loves_talking",
		"gestures",
		"visual_learner",
		"drawing",
	},
}

// StampEmojis is the fixed set of praise symbols.
var StampEmojis = []string{"🌟", "👏", "💖", "🎉"}

// IsCategory reports whether c belongs to the fixed set.
func IsCategory(c CategoryID) bool {
	return slices.Contains(Categories, c)
}

// OptionKeys returns the option keys of category c in positional order.
func OptionKeys(c CategoryID) []string {
	return categoryOptions[c]
}

// OptionKey resolves a positional index to its stable key.
func OptionKey(c CategoryID, index int) (string, bool) {
	keys := categoryOptions[c]
	if index < 0 || index >= len(keys) {
		return "", false
	}
	return keys[index], true
}

// IsStampEmoji reports whether s is one of the praise symbols.
func IsStampEmoji(s string) bool {
	return slices.Contains(StampEmojis, s)
}
