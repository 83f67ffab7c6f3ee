package models

// SeekingFlagOn is the raw value a checked seeking checkbox submits.
const SeekingFlagOn = "y"

// ParseSeekingFlag converts a raw seeking_talent / seeking_venue form value.
// Only the exact string "y" is true.
func ParseSeekingFlag(raw string) bool {
	return raw == SeekingFlagOn
}
