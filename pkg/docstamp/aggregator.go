package docstamp

import "strings"

// RunAggregator treats the runs of a paragraph as a single text. Word
// processors are free to split a paragraph into any number of runs at any
// position, so there is no rule for how many runs a placeholder is spread
// over. Add runs in document order with AddRun, then use ReplaceFirst to
// edit the aggregated text, and finally read the modified runs back with
// Runs.
//
// Offsets recorded at AddRun time are a snapshot: a replacement changes run
// lengths without re-running the bookkeeping. Callers that replace more
// than once must build a fresh aggregator per replacement, and must not
// call AddRun after the first replacement.
type RunAggregator struct {
	currentPosition int
	runs            []*IndexedRun
}

// NewRunAggregator returns an empty aggregator.
func NewRunAggregator() *RunAggregator {
	return &RunAggregator{}
}

// NewParagraphAggregator returns an aggregator over the paragraph's runs in
// document order.
func NewParagraphAggregator(para *Paragraph) *RunAggregator {
	a := NewRunAggregator()
	if para == nil {
		return a
	}
	for i := range para.Runs {
		a.AddRun(&para.Runs[i])
	}
	return a
}

// AddRun appends a run to the aggregation. Runs without text contribute no
// offsets and are not tracked.
func (a *RunAggregator) AddRun(run *Run) {
	text := run.GetText()
	if text == "" {
		return
	}
	startIndex := a.currentPosition
	endIndex := a.currentPosition + len(text) - 1
	a.runs = append(a.runs, &IndexedRun{
		startIndex: startIndex,
		endIndex:   endIndex,
		run:        run,
	})
	a.currentPosition = endIndex + 1
}

// Text returns the aggregated text over all tracked runs. It reflects the
// runs' current text, so earlier replacements show up here.
func (a *RunAggregator) Text() string {
	var builder strings.Builder
	for _, ir := range a.runs {
		builder.WriteString(ir.run.GetText())
	}
	return builder.String()
}

// ReplaceFirst replaces the first occurrence of placeholder in the
// aggregated text by replacement and reports whether a replacement took
// place. The whole replacement ends up in the first run the match touches;
// the matched portions of any later touched runs are deleted. An empty or
// absent placeholder leaves every run unchanged.
func (a *RunAggregator) ReplaceFirst(placeholder, replacement string) bool {
	if placeholder == "" {
		return false
	}
	text := a.Text()
	matchStart := strings.Index(text, placeholder)
	if matchStart < 0 {
		return false
	}
	matchEnd := matchStart + len(placeholder) - 1

	// Select every touched run before mutating anything so the selection
	// works off a consistent offset snapshot.
	touched := a.touchedRuns(matchStart, matchEnd)
	for i, ir := range touched {
		switch {
		case i == 0:
			// The whole replacement goes into the first touched run.
			ir.Replace(matchStart, matchEnd, replacement)
		case i == len(touched)-1:
			// Delete the last run's share of the match, keep its tail.
			ir.Replace(ir.StartIndex(), matchEnd, "")
		default:
			// Interior runs are wholly inside the match.
			ir.Run().SetText("")
		}
	}
	return true
}

// touchedRuns returns the runs whose ranges overlap [start, end]. The runs
// partition the offset space, so the result is a contiguous slice of the
// sequence.
func (a *RunAggregator) touchedRuns(start, end int) []*IndexedRun {
	var touched []*IndexedRun
	for _, ir := range a.runs {
		if ir.TouchedBy(start, end) {
			touched = append(touched, ir)
		}
	}
	return touched
}

// Runs returns the tracked run handles in order. Depending on what
// replacements were applied, some runs may now hold empty text.
func (a *RunAggregator) Runs() []*Run {
	result := make([]*Run, 0, len(a.runs))
	for _, ir := range a.runs {
		result = append(result, ir.run)
	}
	return result
}
