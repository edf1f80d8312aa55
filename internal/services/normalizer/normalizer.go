package normalizer

import (
	"regexp"
	"strings"
)

// Separator is the canonical en-dash between song title and artist
const Separator = "–"

// Warning reasons attached to diagnostic output
const (
	ReasonAmbiguous        = "AMBIGUOUS"
	ReasonPossiblyReversed = "POSSIBLY_REVERSED"
)

// Warning is a non-blocking diagnostic about a single input line.
// Warnings never change the normalized output; they exist so callers
// (and tests) can observe the heuristics instead of losing them in logs.
type Warning struct {
	Line   string `json:"line"`
	Reason string `json:"reason"`
}

// Options controls normalization behavior
type Options struct {
	// RequireSeparator enforces the "Title – Artist" form. Lines without
	// an en-dash after repair are dropped. Used for generated text, where
	// the prompt asked for that exact shape.
	RequireSeparator bool

	// RecoverInlineLists splits numbered items emitted mid-line, e.g.
	// "1. Foo 2. Bar" on one line. Only generated text gets this treatment;
	// a typed query may legitimately contain "<digits>. " in a title.
	RecoverInlineLists bool
}

var (
	// Leading ordinal or bullet markers: "1.", "2)", "-"
	markerPattern = regexp.MustCompile(`^(?:\d+[.)]|-)\s*`)

	// A numbered item starting mid-line, e.g. "1. Foo 2. Bar" on one line.
	// Some generations emit the whole list without newlines.
	inlineItemPattern = regexp.MustCompile(`\s+(\d+\.\s+)`)
)

// Normalize turns raw free text into an ordered list of clean query lines
// plus diagnostics. It is a pure function; output order mirrors input order.
func Normalize(raw string, opts Options) ([]string, []Warning) {
	// Recover numbered lists emitted on a single line before splitting
	relisted := raw
	if opts.RecoverInlineLists {
		relisted = inlineItemPattern.ReplaceAllString(raw, "\n$1")
	}

	var queries []string
	var warnings []Warning

	for _, line := range strings.Split(relisted, "\n") {
		// Collapse internal whitespace runs and trim in one pass
		line = strings.Join(strings.Fields(line), " ")
		line = markerPattern.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if opts.RequireSeparator {
			line = repairSeparator(line)

			if !strings.Contains(line, Separator) {
				if len(strings.Fields(line)) >= 4 {
					warnings = append(warnings, Warning{Line: line, Reason: ReasonAmbiguous})
				}
				// No usable "Title – Artist" shape
				continue
			}

			if w, flagged := checkReversal(line); flagged {
				warnings = append(warnings, w)
			}
		}

		queries = append(queries, line)
	}

	return queries, warnings
}

// repairSeparator rewrites common "Title, Artist" and "Title - Artist"
// shapes into the canonical en-dash form. Rules fire in the order stated:
// comma first, then hyphen.
func repairSeparator(line string) string {
	if parts := strings.Split(line, ","); len(parts) == 2 {
		title := strings.TrimSpace(parts[0])
		artist := strings.TrimSpace(parts[1])
		// A trailing or leading comma is not a separator
		if title != "" && artist != "" {
			return title + " " + Separator + " " + artist
		}
	}

	if strings.Contains(line, "-") && !strings.Contains(line, Separator) {
		if strings.Contains(line, " - ") {
			return strings.Replace(line, " - ", " "+Separator+" ", 1)
		}
		return strings.Replace(line, "-", Separator, 1)
	}

	return line
}

// checkReversal flags lines that look like "Artist – Song Title With Words":
// a short first part and a long second part usually means the generation
// put the artist first. No correction is applied; the source never did,
// and guessing would be wrong as often as right.
func checkReversal(line string) (Warning, bool) {
	parts := strings.SplitN(line, Separator, 2)
	if len(parts) != 2 {
		return Warning{}, false
	}

	first := len(strings.Fields(parts[0]))
	second := len(strings.Fields(parts[1]))
	if first <= 3 && second >= 3 {
		return Warning{Line: line, Reason: ReasonPossiblyReversed}, true
	}

	return Warning{}, false
}
