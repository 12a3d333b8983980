// Package extract pulls a JSON literal out of free-form model output.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"trivia-orb/internal/domain"
)

// Mode selects which JSON literal to look for.
type Mode int

const (
	ModeObject Mode = iota
	ModeArray
)

func (m Mode) brackets() (open, close byte) {
	if m == ModeArray {
		return '[', ']'
	}
	return '{', '}'
}

func (m Mode) String() string {
	if m == ModeArray {
		return "array"
	}
	return "object"
}

// ModeFor maps a generation mode to the JSON literal its prompt asks for.
func ModeFor(mode domain.GenerationMode) Mode {
	if mode == domain.ModeTopicList {
		return ModeArray
	}
	return ModeObject
}

var (
	leadingFence  = regexp.MustCompile("(?i)^```[a-z0-9_+.-]*[ \t]*\r?\n?")
	trailingFence = regexp.MustCompile("\r?\n?```\\s*$")
)

// StripCodeFence removes one leading fence (with an optional language tag)
// and one trailing fence.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	s = leadingFence.ReplaceAllString(s, "")
	s = trailingFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Extract returns the first JSON literal of mode found in raw, parsed into
// a generic value (map[string]any or []any).
func Extract(raw string, mode Mode) (any, error) {
	text := StripCodeFence(raw)
	open, _ := mode.brackets()

	var firstErr *domain.DomainError
	from := 0
	for {
		idx := strings.IndexByte(text[from:], open)
		if idx < 0 {
			break
		}
		start := from + idx
		candidate := scanBalanced(text[start:], mode)

		var v any
		err := json.Unmarshal([]byte(candidate), &v)
		if err == nil {
			return v, nil
		}
		if firstErr == nil {
			firstErr = domain.NewMalformedJSONError(candidate, err)
		}
		from = start + 1
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return nil, domain.NewExtractionFailedError("no JSON "+mode.String()+" found in model output", raw)
}

// scanBalanced returns the prefix of s (which starts with the opening bracket)
// that closes at depth 0. Brackets inside string literals are ignored.
// When the literal never closes, all of s is returned.
func scanBalanced(s string, mode Mode) string {
	open, close := mode.brackets()
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return s
}
