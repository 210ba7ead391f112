package main

import (
	"errors"
	"os"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"
	"github.com/mattn/go-runewidth"
)

// mdRenderer renders markdown to terminal-formatted output.
var mdRenderer *glamour.TermRenderer

func initMarkdownRenderer(width int) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return
	}
	mdRenderer = r
}

// renderMarkdown converts markdown text to terminal-formatted output.
func renderMarkdown(text string) string {
	if mdRenderer == nil {
		return text
	}
	out, err := mdRenderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

// truncate shortens s to at most w cells, appending "…" when cut. Newlines
// are replaced with spaces for single-line display.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	return runewidth.Truncate(s, w, "…")
}

// fit truncates s to w cells and pads it with spaces to exactly w cells.
func fit(s string, w int) string {
	return runewidth.FillRight(truncate(s, w), w)
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// imageName returns the file name of an image URL.
func imageName(src string) string {
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	return path.Base(src)
}

// marquee returns a width-cell window into an endlessly repeating loop,
// shifted shift cells to the left.
func marquee(loop string, shift, width int) string {
	if loop == "" || width <= 0 {
		return ""
	}
	runes := []rune(loop)
	shift %= len(runes)
	if shift < 0 {
		shift += len(runes)
	}
	out := append([]rune(nil), runes[shift:]...)
	for runewidth.StringWidth(string(out)) < width {
		out = append(out, runes...)
	}
	return runewidth.Truncate(string(out), width, "")
}
