package patcher

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const contextLines = 3

var (
	fileStyle    = lipgloss.NewStyle().Bold(true)
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))  // Mauve
	insertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))  // Green
	deleteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("197")) // Red
	contextStyle = lipgloss.NewStyle().Faint(true)
)

type diffLine struct {
	op   byte // ' ', '-' or '+'
	text string
}

// Unified renders the change from before to after as a unified diff with
// three lines of context. It returns "" when the contents are equal.
func Unified(path, before, after string) string {
	if before == after {
		return ""
	}

	lines := lineDiff(before, after)

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)
	for _, h := range buildHunks(lines, contextLines) {
		b.WriteString(h)
	}
	return b.String()
}

// Preview is Unified with terminal styling.
func Preview(path, before, after string) string {
	plain := Unified(path, before, after)
	if plain == "" {
		return ""
	}

	var b strings.Builder
	for _, line := range strings.SplitAfter(plain, "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(text, "---"), strings.HasPrefix(text, "+++"):
			text = fileStyle.Render(text)
		case strings.HasPrefix(text, "@@"):
			text = hunkStyle.Render(text)
		case strings.HasPrefix(text, "+"):
			text = insertStyle.Render(text)
		case strings.HasPrefix(text, "-"):
			text = deleteStyle.Render(text)
		default:
			text = contextStyle.Render(text)
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String()
}

// lineDiff computes a line-level diff and flattens it into single lines.
func lineDiff(before, after string) []diffLine {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []diffLine
	for _, d := range diffs {
		var op byte
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = '-'
		case diffmatchpatch.DiffInsert:
			op = '+'
		default:
			op = ' '
		}
		for _, text := range splitLines(d.Text) {
			lines = append(lines, diffLine{op: op, text: text})
		}
	}
	return lines
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// buildHunks groups changed lines with their surrounding context. Changes
// separated by no more than twice the context share one hunk.
func buildHunks(lines []diffLine, context int) []string {
	// oldPos[i] and newPos[i] are the 1-based line numbers line i would have
	// in the old and new file.
	oldPos := make([]int, len(lines)+1)
	newPos := make([]int, len(lines)+1)
	oldPos[0], newPos[0] = 1, 1
	for i, l := range lines {
		oldPos[i+1], newPos[i+1] = oldPos[i], newPos[i]
		if l.op != '+' {
			oldPos[i+1]++
		}
		if l.op != '-' {
			newPos[i+1]++
		}
	}

	var hunks []string
	for i := 0; i < len(lines); i++ {
		if lines[i].op == ' ' {
			continue
		}

		start := max(0, i-context)
		lastChange := i
		j := i
		for ; j < len(lines); j++ {
			if lines[j].op != ' ' {
				lastChange = j
			} else if j-lastChange > 2*context {
				break
			}
		}
		end := min(len(lines), lastChange+context+1)

		hunks = append(hunks, formatHunk(lines[start:end], oldPos[start], newPos[start]))
		i = end - 1
	}
	return hunks
}

func formatHunk(hunk []diffLine, oldStart, newStart int) string {
	addCount, removeCount := 0, 0
	for _, l := range hunk {
		switch l.op {
		case '+':
			addCount++
		case '-':
			removeCount++
		}
	}
	contextCount := len(hunk) - addCount - removeCount
	oldLines := contextCount + removeCount
	newLines := contextCount + addCount

	// An empty side points at the line before the hunk.
	if oldLines == 0 {
		oldStart--
	}
	if newLines == 0 {
		newStart--
	}

	var b strings.Builder
	b.WriteString(buildHunkHeader(oldStart, oldLines, newStart, newLines))
	for _, l := range hunk {
		b.WriteByte(l.op)
		b.WriteString(l.text)
		b.WriteByte('\n')
	}
	return b.String()
}

func buildHunkHeader(oldStart, oldLines, newStart, newLines int) string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@\n", oldStart, oldLines, newStart, newLines)
}
