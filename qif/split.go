package qif

import "strings"

// Split is one categorized portion of a transaction amount. The sign of the
// amount gives its direction.
type Split struct {
	category string
	memo     string
	amount   int64
}

// SplitBuilder assembles a Split. Setters return a modified copy.
type SplitBuilder struct {
	split Split
}

func NewSplit() SplitBuilder {
	return SplitBuilder{}
}

func (b SplitBuilder) WithCategory(category string) SplitBuilder {
	b.split.category = category
	return b
}

func (b SplitBuilder) WithMemo(memo string) SplitBuilder {
	b.split.memo = memo
	return b
}

// WithAmount sets the amount in minor units.
func (b SplitBuilder) WithAmount(minor int64) SplitBuilder {
	b.split.amount = minor
	return b
}

func (b SplitBuilder) Build() Split {
	return b.split
}

func (s Split) Category() string { return s.category }
func (s Split) Memo() string     { return s.memo }
func (s Split) Amount() int64    { return s.amount }

// String renders the S/E/$ lines of the split.
func (s Split) String() string {
	var sb strings.Builder
	s.render(&sb)
	return sb.String()
}

func (s Split) render(sb *strings.Builder) {
	line(sb, "S", s.category)
	line(sb, "E", s.memo)
	line(sb, "$", FormatAmount(s.amount))
}

func sumSplits(splits []Split) int64 {
	var sum int64
	for _, s := range splits {
		sum += s.amount
	}
	return sum
}
