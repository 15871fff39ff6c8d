// Package models defines topic entries and their legacy on-disk encoding.
package models

import "strings"

// StepsKind classifies how a topic stores its content.
type StepsKind string

const (
	StepsKindText  StepsKind = "text"
	StepsKindImage StepsKind = "image"
)

const (
	sentinelPrefix = "[Image stored at "
	sentinelSuffix = "]"
)

// Steps is a tagged variant: either ordered free-text lines or a reference
// to a stored image file. The legacy single-array-with-sentinel encoding
// exists only at the persistence boundary; see StepsFromLegacy and Legacy.
type Steps struct {
	Kind  StepsKind
	Lines []string // valid when Kind == StepsKindText
	Image string   // valid when Kind == StepsKindImage

	// Mixed is set when the on-disk entry interleaved an image sentinel
	// with plain text lines. Such entries load as text; the flag is
	// surfaced at recall rather than silently rewritten.
	Mixed bool
}

// TextSteps builds a text variant from the given lines, kept verbatim.
func TextSteps(lines []string) Steps {
	return Steps{Kind: StepsKindText, Lines: lines}
}

// ImageRef builds an image variant referencing a stored file path.
func ImageRef(path string) Steps {
	return Steps{Kind: StepsKindImage, Image: path}
}

// ImageSentinel renders the legacy sentinel string for path.
func ImageSentinel(path string) string {
	return sentinelPrefix + path + sentinelSuffix
}

// ParseImageSentinel extracts the embedded path if s is an image sentinel.
func ParseImageSentinel(s string) (string, bool) {
	if !strings.HasPrefix(s, sentinelPrefix) || !strings.HasSuffix(s, sentinelSuffix) {
		return "", false
	}
	return s[len(sentinelPrefix) : len(s)-len(sentinelSuffix)], true
}

// StepsFromLegacy interprets a raw step array from the topic file.
// A single-element array holding a sentinel becomes an image reference.
// A sentinel appearing among other lines is a malformed mixed entry: it is
// kept as text with Mixed set.
func StepsFromLegacy(raw []string) Steps {
	if len(raw) == 1 {
		if path, ok := ParseImageSentinel(raw[0]); ok {
			return ImageRef(path)
		}
	}
	s := TextSteps(raw)
	for _, line := range raw {
		if _, ok := ParseImageSentinel(line); ok {
			s.Mixed = true
			break
		}
	}
	return s
}

// Legacy renders s back into the on-disk array form. For image references
// this is the single sentinel element; for text it is the lines unchanged.
// The result is also the render order used by recall.
func (s Steps) Legacy() []string {
	if s.Kind == StepsKindImage {
		return []string{ImageSentinel(s.Image)}
	}
	if s.Lines == nil {
		return []string{}
	}
	return s.Lines
}

// Topic pairs a name with its steps.
type Topic struct {
	Name  string
	Steps Steps
}
