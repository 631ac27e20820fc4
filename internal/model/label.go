package model

import (
	"strconv"
	"strings"
)

// PlaceholderLabel is returned when a workspace has neither icons nor an index.
const PlaceholderLabel = " "

// SynthesizeLabel builds the display name for a workspace.
//
//	SynthesizeLabel(&1, ["a", "b"]) == "1: a b "
//	SynthesizeLabel(&1, nil)        == "1"
//	SynthesizeLabel(nil, nil)       == " "
//
// Empty icons are skipped. The result depends only on its inputs, so it
// can be compared byte for byte against the live workspace name.
func SynthesizeLabel(index *int, icons []string) string {
	nonEmpty := make([]string, 0, len(icons))
	for _, icon := range icons {
		if icon != "" {
			nonEmpty = append(nonEmpty, icon)
		}
	}

	joined := strings.Join(nonEmpty, " ")
	if joined != "" {
		joined += " "
	}

	switch {
	case joined != "" && index != nil:
		return strconv.Itoa(*index) + ": " + joined
	case joined != "":
		// Unreachable through the updater, which rejects workspaces without num.
		return ": " + joined
	case index != nil:
		return strconv.Itoa(*index)
	default:
		return PlaceholderLabel
	}
}
