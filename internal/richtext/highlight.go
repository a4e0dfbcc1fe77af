package richtext

import "unicode"

// Style configures the emphasis applied to the differing span of each side.
type Style struct {
	// Size is the point size for highlighted runs.
	Size float64
	// CurrentColor marks the observed side, CorrectColor the expected side.
	CurrentColor string
	CorrectColor string
}

// Highlight compares two titles and returns parallel run sequences whose
// concatenated text reconstructs each input. The shared prefix and suffix
// (matched case-insensitively, outside in) become plain runs; the remaining
// middle span on each side, if any, becomes a single bold colored run.
//
// This deliberately isolates one contiguous differing span per side. It is
// cheap and adequate for short titles; it does not detect reordered segments
// the way a general LCS diff would.
func Highlight(current, correct string, style Style) (currentRuns, correctRuns []Run) {
	cur := []rune(current)
	cor := []rune(correct)
	n := len(cur)
	if len(cor) < n {
		n = len(cor)
	}

	pre := 0
	for pre < n && foldEqual(cur[pre], cor[pre]) {
		pre++
	}
	suf := 0
	for suf < n-pre && foldEqual(cur[len(cur)-1-suf], cor[len(cor)-1-suf]) {
		suf++
	}

	currentRuns = splitRuns(cur, pre, suf, style.Size, style.CurrentColor)
	correctRuns = splitRuns(cor, pre, suf, style.Size, style.CorrectColor)
	if len(currentRuns) == 0 && len(correctRuns) == 0 {
		if current != "" {
			currentRuns = []Run{{Text: current}}
		}
		if correct != "" {
			correctRuns = []Run{{Text: correct}}
		}
	}
	return currentRuns, correctRuns
}

func splitRuns(s []rune, pre, suf int, size float64, color string) []Run {
	var runs []Run
	if pre > 0 {
		runs = append(runs, Run{Text: string(s[:pre])})
	}
	if mid := s[pre : len(s)-suf]; len(mid) > 0 {
		runs = append(runs, Run{Text: string(mid), Bold: true, Size: size, Color: color})
	}
	if suf > 0 {
		runs = append(runs, Run{Text: string(s[len(s)-suf:])})
	}
	return runs
}

func foldEqual(a, b rune) bool {
	return a == b || unicode.ToLower(a) == unicode.ToLower(b)
}
