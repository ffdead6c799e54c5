package split

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_address_splitter/internal/core/domain"
	"github.com/baditaflorin/go_address_splitter/internal/ports"
)

const (
	// DefaultSlackRatio is the fraction of the target length a line may
	// exceed before trailing words are moved to the following line.
	DefaultSlackRatio = 0.5

	// segmentJoiner re-joins delimiter-separated segments placed on the
	// same line.
	segmentJoiner = ", "

	splitName = "address_split"
)

// Config holds configuration for the line splitter.
type Config struct {
	SlackRatio float64
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		SlackRatio: DefaultSlackRatio,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.SlackRatio < 0 {
		return errors.New("slackRatio must not be negative")
	}
	return nil
}

// Splitter implements the three-line address split.
type Splitter struct {
	config     Config
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewSplitter creates a new address line splitter.
func NewSplitter(config Config, logger ports.Logger, normalizer ports.Normalizer) (*Splitter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	if normalizer == nil {
		return nil, errors.New("normalizer must not be nil")
	}

	return &Splitter{
		config:     config,
		logger:     logger,
		normalizer: normalizer,
	}, nil
}

// Split distributes the given address across three lines of roughly equal
// length. It is total: every input, including empty or whitespace-only
// strings, produces a valid result and no error.
func (s *Splitter) Split(address string) domain.Result {
	s.logger.Debug("Starting address split", "address", address)

	details := make(map[string]interface{})

	normalized := s.normalizer.Normalize(address)
	if normalized == "" {
		s.logger.Debug("Address is empty after normalization", "address", address)
		details["empty_input"] = true
		return domain.Result{
			Name:     splitName,
			Original: address,
			Details:  details,
		}
	}

	target := targetLength(utf8.RuneCountInString(normalized))
	segments := splitSegments(normalized)

	s.logger.Debug("Segmented address",
		"normalized", normalized,
		"segment_count", len(segments),
		"target_length", target,
	)

	var lines [3]string
	switch {
	case len(segments) >= 3:
		lines = distributeSegments(segments)
		lines = rebalance(lines, target, s.config.SlackRatio)
		details["strategy"] = "segments"
	case len(segments) == 2:
		lines = splitTwoSegments(segments[0], segments[1], target)
		details["strategy"] = "two_segments"
	default:
		lines = wordWrap(strings.Fields(normalized), target)
		details["strategy"] = "word_wrap"
	}

	details["segment_count"] = len(segments)
	details["target_length"] = target

	s.logger.Debug("Computed address lines",
		"line1", lines[0],
		"line2", lines[1],
		"line3", lines[2],
	)

	return domain.Result{
		Name:         splitName,
		Line1:        lines[0],
		Line2:        lines[1],
		Line3:        lines[2],
		Original:     address,
		Normalized:   normalized,
		SegmentCount: len(segments),
		TargetLength: target,
		Details:      details,
	}
}

// targetLength is the ideal per-line budget: a third of the total, rounded up.
func targetLength(total int) int {
	return (total + 2) / 3
}

// splitSegments breaks the normalized address on comma and semicolon
// delimiters, trimming each piece and discarding empty ones.
func splitSegments(normalized string) []string {
	pieces := strings.FieldsFunc(normalized, func(r rune) bool {
		return r == ',' || r == ';'
	})

	segments := pieces[:0]
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			segments = append(segments, piece)
		}
	}
	return segments
}

// distributeSegments packs segments in order onto three lines. A segment is
// always appended to the current line; once that line's accumulated length
// reaches the per-segment target and further segments remain, packing moves
// on to the next line. Segments arriving after the third line is reached
// accumulate there, so nothing is ever dropped.
func distributeSegments(segments []string) [3]string {
	total := 0
	for _, segment := range segments {
		total += utf8.RuneCountInString(segment)
	}
	target := targetLength(total)

	var lines [3]string
	var lengths [3]int
	current := 0

	for i, segment := range segments {
		if lines[current] == "" {
			lines[current] = segment
			lengths[current] = utf8.RuneCountInString(segment)
		} else {
			lines[current] += segmentJoiner + segment
			lengths[current] += len(segmentJoiner) + utf8.RuneCountInString(segment)
		}

		if current < 2 && lengths[current] >= target && i < len(segments)-1 {
			current++
		}
	}

	return lines
}

// splitTwoSegments handles the two-segment case: the first segment is wrapped
// into line one, and its overflow rejoins the second segment before being
// wrapped across lines two and three.
func splitTwoSegments(first, second string, target int) [3]string {
	line1, rest := takeLine(strings.Fields(first), target)

	combined := second
	if len(rest) > 0 {
		combined = strings.Join(rest, " ") + segmentJoiner + second
	}

	line2, rest2 := takeLine(strings.Fields(combined), target)
	return [3]string{line1, line2, strings.Join(rest2, " ")}
}

// wordWrap distributes whitespace-delimited tokens across three lines,
// filling each line up to the target length. Used when too few segments
// exist for delimiter-based distribution.
func wordWrap(words []string, target int) [3]string {
	var lines [3]string
	rest := words
	lines[0], rest = takeLine(rest, target)
	lines[1], rest = takeLine(rest, target)
	lines[2] = strings.Join(rest, " ")
	return lines
}

// takeLine greedily fills a single line with whole words up to the target
// length and returns the line plus the words that did not fit. A non-empty
// word list always yields at least one word, even if it alone overflows the
// target; words are never split.
func takeLine(words []string, target int) (string, []string) {
	if len(words) == 0 {
		return "", nil
	}

	var sb strings.Builder
	length := 0

	i := 0
	for ; i < len(words); i++ {
		wordLen := utf8.RuneCountInString(words[i])
		if i > 0 {
			if length+1+wordLen > target {
				break
			}
			sb.WriteByte(' ')
			length++
		}
		sb.WriteString(words[i])
		length += wordLen
	}

	return sb.String(), words[i:]
}

// rebalance moves whole trailing words from a line that overshoots the
// tolerance threshold onto the following line. Only whitespace-delimited
// words move; a line keeps at least one word, so an unsplittable oversized
// token stays put rather than being truncated.
func rebalance(lines [3]string, target int, slack float64) [3]string {
	limit := target + int(float64(target)*slack)

	for i := 0; i < 2; i++ {
		words := strings.Fields(lines[i])
		if len(words) < 2 {
			continue
		}

		length := utf8.RuneCountInString(lines[i])
		moved := 0
		for length > limit && len(words)-moved > 1 {
			last := words[len(words)-1-moved]
			length -= utf8.RuneCountInString(last) + 1
			moved++
		}
		if moved == 0 {
			continue
		}

		overflow := strings.Join(words[len(words)-moved:], " ")
		lines[i] = strings.Join(words[:len(words)-moved], " ")
		if lines[i+1] == "" {
			lines[i+1] = overflow
		} else {
			lines[i+1] = overflow + " " + lines[i+1]
		}
	}

	return lines
}
