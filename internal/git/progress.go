package git

import (
	"regexp"
	"strconv"
	"strings"
)

// ProgressRecord is the parsed, structured representation of one line of
// git's textual progress output, e.g. "Checking out files: 42% (420/1000)".
type ProgressRecord struct {
	// Text is the full matched line, without the trailing line break.
	Text string
	// Percent is the completion fraction in [0, 1].
	Percent float64
}

var (
	// Matches "<phase>: NN% (current/total)". Git appends ", done." to the
	// final line of a phase, which the open-ended match tolerates.
	countedProgressRe = regexp.MustCompile(`^(.+): +(\d+)% \((\d+)/(\d+)\)`)

	// Matches "<phase>: NN%" for phases that report no item counts.
	percentProgressRe = regexp.MustCompile(`^(.+): +(\d+)%`)
)

// parseProgressLine attempts to extract a progress record from a single line.
// It returns false for lines that do not match any known pattern; unmatched
// text is not an error, git's output varies across versions and locales.
func parseProgressLine(line string) (ProgressRecord, bool) {
	line = strings.TrimRight(line, " \t")
	if line == "" {
		return ProgressRecord{}, false
	}

	if m := countedProgressRe.FindStringSubmatch(line); m != nil {
		current, errCur := strconv.ParseFloat(m[3], 64)
		total, errTot := strconv.ParseFloat(m[4], 64)
		// Malformed or zero-total counts degrade to 0% rather than failing;
		// progress reporting is best-effort.
		percent := 0.0
		if errCur == nil && errTot == nil && total > 0 {
			percent = current / total
		}
		return ProgressRecord{Text: line, Percent: clampPercent(percent)}, true
	}

	if m := percentProgressRe.FindStringSubmatch(line); m != nil {
		value, err := strconv.ParseFloat(m[2], 64)
		percent := 0.0
		if err == nil {
			percent = value / 100
		}
		return ProgressRecord{Text: line, Percent: clampPercent(percent)}, true
	}

	return ProgressRecord{}, false
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ProgressParser extracts progress records from chunks of git output.
//
// Process output arrives chunk-granular, not line-granular: a chunk may
// contain several lines, or end mid-line. The parser buffers the incomplete
// trailing line across calls. Git terminates in-place progress updates with
// a carriage return and only the final line of a phase with a newline, so
// both are treated as line breaks.
//
// One parser instance exists per operation; it holds no cross-operation
// state. Percent values are not guaranteed to be monotonic, consumers must
// tolerate duplicates and regressions.
type ProgressParser struct {
	remainder string
}

// NewProgressParser creates a parser with an empty buffer.
func NewProgressParser() *ProgressParser {
	return &ProgressParser{}
}

// Parse consumes a chunk of output and returns the records for every
// complete line it contained, in receipt order. An empty chunk or a chunk
// holding only a partial line yields no records.
func (p *ProgressParser) Parse(chunk string) []ProgressRecord {
	data := p.remainder + chunk

	var records []ProgressRecord
	start := 0
	for i := 0; i < len(data); i++ {
		if data[i] != '\n' && data[i] != '\r' {
			continue
		}
		if record, ok := parseProgressLine(data[start:i]); ok {
			records = append(records, record)
		}
		start = i + 1
	}
	p.remainder = data[start:]
	return records
}

// Flush processes any buffered partial line as best-effort. Call it once
// when the stream closes; unmatched remainders are discarded.
func (p *ProgressParser) Flush() []ProgressRecord {
	line := p.remainder
	p.remainder = ""
	if record, ok := parseProgressLine(line); ok {
		return []ProgressRecord{record}
	}
	return nil
}
