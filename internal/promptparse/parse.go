package promptparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// Defaults used when the prompt carries no cue for a parameter.
const (
	DefaultSpan       = 10.0
	DefaultRootChord  = 2.0
	DefaultSweepDeg   = 25.0
	DefaultTaperRatio = 0.5
)

// Floors applied to extracted values so the result stays buildable.
const (
	minSemiSpan  = 1.0
	minRootChord = 0.5
	minTaper     = 0.1
)

// Pre-compiled cue patterns. Each captures one decimal number.
var (
	spanBefore  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:m|meter(?:s)?)?\s*(?:wingspan|span)`)
	spanAfter   = regexp.MustCompile(`span[:=]\s*(\d+(?:\.\d+)?)`)
	chordBefore = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:m|meter(?:s)?)?\s*(?:root\s*chord)`)
	chordAfter  = regexp.MustCompile(`chord[:=]\s*(\d+(?:\.\d+)?)`)
	sweepBefore = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:°|deg(?:rees)?)?\s*(?:sweep)`)
	sweepAfter  = regexp.MustCompile(`sweep[:=]\s*(\d+(?:\.\d+)?)`)
	taperCue    = regexp.MustCompile(`taper(?:\s*ratio)?[:=]\s*(\d+(?:\.\d+)?)`)
)

// Parse extracts a wing specification from free text. Cues may appear in
// either "12m wingspan" or "span: 12" form; absent cues take the package
// defaults. The returned spec has the floors applied but is not validated;
// an out-of-range sweep cue still reaches the caller's Validate.
func Parse(prompt string) domain.WingSpec {
	text := strings.ToLower(prompt)

	span := findValue(text, DefaultSpan, spanBefore, spanAfter)
	chord := findValue(text, DefaultRootChord, chordBefore, chordAfter)
	sweep := findValue(text, DefaultSweepDeg, sweepBefore, sweepAfter)
	taper := findValue(text, DefaultTaperRatio, taperCue)

	return domain.WingSpec{
		RootChord:  floor(chord, minRootChord),
		SemiSpan:   floor(span/2.0, minSemiSpan),
		SweepDeg:   sweep,
		TaperRatio: floor(taper, minTaper),
	}
}

// findValue tries each pattern in order and returns the first captured
// number, or the default when nothing matches.
func findValue(text string, def float64, patterns ...*regexp.Regexp) float64 {
	for _, pattern := range patterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		return value
	}
	return def
}

func floor(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}
