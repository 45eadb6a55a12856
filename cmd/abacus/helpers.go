package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"
	"github.com/mattn/go-runewidth"
)

const helpMarkdown = `# Calculator

Type keys or move across the keypad with the arrows and press **space**.

| Key | Action |
| --- | --- |
| ` + "`0-9` `.`" + ` | enter a number |
| ` + "`+ - * /`" + ` | operator, applied left to right |
| ` + "`=` `enter`" + ` | equals |
| ` + "`%`" + ` | divide the display by 100 |
| ` + "`n`" + ` | toggle sign |
| ` + "`c` `esc`" + ` | clear |
| ` + "`?`" + ` | close this help |
| ` + "`q`" + ` | quit |

Operators have no precedence: ` + "`2 + 3 × 4 =`" + ` is **20**.
`

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// renderMarkdown converts markdown text to terminal-formatted output. The
// raw text is returned when no renderer can be built.
func renderMarkdown(text string, width int) string {
	if width <= 0 {
		width = 60
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// fitDisplay keeps the rightmost cells of s that fit in width, prefixing an
// ellipsis when digits were cut. The least significant digits stay visible,
// like a display that scrolls as you type.
func fitDisplay(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}

	const ellipsis = "…"
	budget := width - runewidth.StringWidth(ellipsis)

	runes := []rune(s)
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > budget {
			break
		}
		used += w
		start--
	}

	return ellipsis + string(runes[start:])
}

// newLogger returns a text slog.Logger writing to path at level. An empty
// path writes to fallback; a nil fallback discards. The returned closer
// releases the log file.
func newLogger(path string, level slog.Level, fallback io.Writer) (*slog.Logger, io.Closer, error) {
	w := fallback
	var closer io.Closer = io.NopCloser(nil)

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path comes from configuration
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	if w == nil {
		return slog.New(slog.DiscardHandler), closer, nil
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}
