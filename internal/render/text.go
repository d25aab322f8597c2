package render

import "strings"

// avgCharWidthRatio approximates character width as a fraction of font size.
const avgCharWidthRatio = 0.6

// EstimateTextWidth estimates the rendered width of text in pixels.
func EstimateTextWidth(s string, fontSize float64) float64 {
	return float64(len([]rune(s))) * fontSize * avgCharWidthRatio
}

// Wrap breaks text into lines of at most width characters, capped at maxLines.
// Overflow is ellipsized on the last line. Words longer than the width are
// split mid-word.
func Wrap(s string, width, maxLines int) []string {
	s = strings.TrimSpace(s)
	if s == "" || width <= 0 || maxLines <= 0 {
		return nil
	}

	var lines []string
	current := ""
	words := strings.Fields(s)

	for i := 0; i < len(words); i++ {
		word := words[i]
		trial := word
		if current != "" {
			trial = current + " " + word
		}
		if len([]rune(trial)) <= width {
			current = trial
			continue
		}
		if current == "" {
			// Single word longer than the line: split it.
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			words[i] = string(runes[width:])
		} else {
			lines = append(lines, current)
			current = ""
		}
		i--
	}
	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := []rune(lines[maxLines-1])
		if len(last) > 3 {
			lines[maxLines-1] = string(last[:len(last)-3]) + "..."
		} else {
			lines[maxLines-1] = "..."
		}
	}
	return lines
}
