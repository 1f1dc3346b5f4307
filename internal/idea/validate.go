package idea

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MinIdeaLength = 5
	MaxIdeaLength = 500
)

var (
	MsgIdeaRequired = "Website idea is required"
	MsgIdeaTooShort = fmt.Sprintf("Website idea must be at least %d characters long", MinIdeaLength)
	MsgIdeaTooLong  = fmt.Sprintf("Website idea must not exceed %d characters", MaxIdeaLength)
)

// NormalizeIdea trims surrounding whitespace from text and checks its length
// in characters. It returns the trimmed text or a validation error.
func NormalizeIdea(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	n := utf8.RuneCountInString(trimmed)
	switch {
	case n == 0:
		return "", NewValidationError(MsgIdeaRequired)
	case n < MinIdeaLength:
		return "", NewValidationError(MsgIdeaTooShort)
	case n > MaxIdeaLength:
		return "", NewValidationError(MsgIdeaTooLong)
	}
	return trimmed, nil
}

// CheckSections verifies that sections honour the generator output contract:
// non-empty, unique ids, unique and strictly increasing positive order, and
// non-empty name and content.
func CheckSections(sections []Section) error {
	if len(sections) == 0 {
		return fmt.Errorf("no sections generated")
	}
	seen := make(map[string]struct{}, len(sections))
	prev := 0
	for i, s := range sections {
		if s.ID == "" {
			return fmt.Errorf("section %d: empty id", i)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("section %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Order <= prev {
			return fmt.Errorf("section %d: order %d not greater than %d", i, s.Order, prev)
		}
		prev = s.Order
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("section %d: empty name", i)
		}
		if strings.TrimSpace(s.Content) == "" {
			return fmt.Errorf("section %d: empty content", i)
		}
	}
	return nil
}
