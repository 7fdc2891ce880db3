package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gocombo/internal/export"
)

// DrawASCIIFactorMatrix draws the combinations as a boxed matrix, one line per
// combination and one column per load case. Load cases a combination leaves
// out are shown as a dot.
func DrawASCIIFactorMatrix(t *export.Table) string {
	var sb strings.Builder

	header := []string{"Combination"}
	for _, lc := range t.Cases {
		header = append(header, string(lc))
	}

	cells := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		line := []string{row.Name}
		for j := range t.Cases {
			if f, ok := t.Value(i, j); ok {
				line = append(line, export.FormatFactor(f))
			} else {
				line = append(line, "·")
			}
		}
		cells[i] = line
	}

	// Column widths
	widths := make([]int, len(header))
	for j, h := range header {
		widths[j] = utf8.RuneCountInString(h)
	}
	for _, line := range cells {
		for j, c := range line {
			widths[j] = max(widths[j], utf8.RuneCountInString(c))
		}
	}

	border := func(left, mid, right string) {
		sb.WriteString("  " + left)
		for j, w := range widths {
			if j > 0 {
				sb.WriteString(mid)
			}
			sb.WriteString(strings.Repeat("─", w+2))
		}
		sb.WriteString(right + "\n")
	}
	line := func(values []string) {
		sb.WriteString("  │")
		for j, v := range values {
			if j == 0 {
				sb.WriteString(fmt.Sprintf(" %-*s │", widths[j], v))
			} else {
				sb.WriteString(fmt.Sprintf(" %*s │", widths[j], v))
			}
		}
		sb.WriteString("\n")
	}

	border("┌", "┬", "┐")
	line(header)
	border("├", "┼", "┤")
	for _, values := range cells {
		line(values)
	}
	border("└", "┴", "┘")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
