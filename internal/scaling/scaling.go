// Package scaling renders attribute-scaled skill descriptions. Skill text
// embeds ranges as "MIN...MAX"; the value at a given attribute rank is a
// linear interpolation anchored at rank 0 and rank 15.
package scaling

import (
	"iter"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxRank is the highest attribute rank the game can reach with temporary
// bonuses. Base attributes cap at 12 points plus equipment.
const MaxRank = 20

// anchorRank is the rank at which a range's MAX value is reached; ranks
// above it extrapolate linearly past MAX.
const anchorRank = 15

var rangePattern = regexp.MustCompile(`(\d+)\.\.\.(\d+)`)

// ScaledValue interpolates a MIN...MAX range at the given rank. Rank is
// clamped to [0, MaxRank]; ranks 16-20 intentionally produce values beyond
// max.
func ScaledValue(minValue, maxValue, rank int) int {
	if rank < 0 {
		rank = 0
	}
	if rank > MaxRank {
		rank = MaxRank
	}
	return int(math.Round(float64(minValue) + float64(maxValue-minValue)*float64(rank)/anchorRank))
}

// Segment is one piece of a rendered description: either literal text or a
// value computed from a range.
type Segment struct {
	// Literal holds the text for non-value segments
	Literal string
	// Value holds the interpolated number when IsValue is set
	Value   int
	IsValue bool
}

// ParseDescription splits a description into literal and computed segments,
// preserving order. The sequence is restartable and computes values lazily,
// so it is safe to re-range on every rank change. Empty input yields an
// empty sequence; input without ranges yields a single literal segment.
func ParseDescription(text string, rank int) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if text == "" {
			return
		}
		rest := text
		for {
			m := rangePattern.FindStringSubmatchIndex(rest)
			if m == nil {
				if rest != "" {
					yield(Segment{Literal: rest})
				}
				return
			}
			if m[0] > 0 {
				if !yield(Segment{Literal: rest[:m[0]]}) {
					return
				}
			}
			minValue, _ := strconv.Atoi(rest[m[2]:m[3]])
			maxValue, _ := strconv.Atoi(rest[m[4]:m[5]])
			if !yield(Segment{Value: ScaledValue(minValue, maxValue, rank), IsValue: true}) {
				return
			}
			rest = rest[m[1]:]
		}
	}
}

// FormatDescription substitutes every range in the description with its
// interpolated value and returns the resulting string.
func FormatDescription(text string, rank int) string {
	var b strings.Builder
	for seg := range ParseDescription(text, rank) {
		if seg.IsValue {
			b.WriteString(strconv.Itoa(seg.Value))
		} else {
			b.WriteString(seg.Literal)
		}
	}
	return b.String()
}
