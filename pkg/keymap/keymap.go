// Package keymap translates key names and keypad labels into calc events. It
// is shared by every front end: the terminal UI, the eval command and the MCP
// tools.
package keymap

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/germanamz/abacus/pkg/calc"
)

// ErrUnknownKey is returned for keys that map to no calculator event.
var ErrUnknownKey = errors.New("unknown key")

// named holds the multi-character key names. Single characters are handled by
// parseRune.
var named = map[string]calc.Event{
	"enter":  calc.Equals(),
	"return": calc.Equals(),
	"ac":     calc.Clear(),
	"clear":  calc.Clear(),
	"esc":    calc.Clear(),
	"+/-":    calc.ToggleSign(),
	"neg":    calc.ToggleSign(),
	"negate": calc.ToggleSign(),
	"plus":   calc.Op(calc.Add),
	"minus":  calc.Op(calc.Subtract),
	"times":  calc.Op(calc.Multiply),
	"divide": calc.Op(calc.Divide),
}

// Parse maps a single key to its event. Matching is case-insensitive.
func Parse(key string) (calc.Event, error) {
	k := strings.ToLower(strings.TrimSpace(key))

	if e, ok := named[k]; ok {
		return e, nil
	}

	if utf8.RuneCountInString(k) == 1 {
		r, _ := utf8.DecodeRuneInString(k)
		if e, ok := parseRune(r); ok {
			return e, nil
		}
	}

	return calc.Event{}, fmt.Errorf("keymap: %w: %q", ErrUnknownKey, key)
}

// Fields tokenizes a key script such as "2+3x4=", "12 . 5 ÷ 5 =" or "5nac".
// Within a run of letters the longest named key wins at each position
// ("neg", "ac"); a letter that starts no named key is read on its own. Every
// other rune is a key of its own. Whitespace is ignored.
func Fields(script string) ([]calc.Event, error) {
	var events []calc.Event

	runes := []rune(script)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			continue
		case r == '+' && i+2 < len(runes) && runes[i+1] == '/' && runes[i+2] == '-':
			events = append(events, calc.ToggleSign())
			i += 2
			continue
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			word, err := parseWord(runes[i:j])
			if err != nil {
				return nil, err
			}
			events = append(events, word...)
			i = j - 1
			continue
		}

		e, err := Parse(string(r))
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, nil
}

// parseWord splits a run of letters into keys by longest match.
func parseWord(word []rune) ([]calc.Event, error) {
	var events []calc.Event

	for i := 0; i < len(word); {
		n, e, ok := longestNamed(word[i:])
		if !ok {
			if e, ok = parseRune(unicode.ToLower(word[i])); !ok {
				return nil, fmt.Errorf("keymap: %w: %q", ErrUnknownKey, string(word[i]))
			}
			n = 1
		}
		events = append(events, e)
		i += n
	}

	return events, nil
}

// longestNamed reports the longest named key that prefixes word.
func longestNamed(word []rune) (int, calc.Event, bool) {
	for n := len(word); n > 1; n-- {
		if e, ok := named[strings.ToLower(string(word[:n]))]; ok {
			return n, e, true
		}
	}

	return 0, calc.Event{}, false
}

func parseRune(r rune) (calc.Event, bool) {
	switch {
	case r >= '0' && r <= '9':
		return calc.Digit(int(r - '0')), true
	case r == '.' || r == ',':
		return calc.DecimalPoint(), true
	case r == '=':
		return calc.Equals(), true
	case r == '%':
		return calc.Percent(), true
	case r == 'n' || r == '±':
		return calc.ToggleSign(), true
	case r == 'c':
		return calc.Clear(), true
	}

	if op, err := calc.ParseOperator(string(r)); err == nil {
		return calc.Op(op), true
	}

	return calc.Event{}, false
}
