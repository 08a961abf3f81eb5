package docstamp

// IndexedRun ties a run to the byte range it owns within a paragraph's
// aggregated text. The range is assigned once when the run is added to a
// RunAggregator and is not updated when the run's text is later rewritten,
// so it is only meaningful for the duration of a single replacement pass.
type IndexedRun struct {
	startIndex int
	endIndex   int
	run        *Run
}

// StartIndex returns the first absolute offset owned by this run.
func (ir *IndexedRun) StartIndex() int {
	return ir.startIndex
}

// EndIndex returns the last absolute offset owned by this run.
func (ir *IndexedRun) EndIndex() int {
	return ir.endIndex
}

// Run returns the underlying run handle.
func (ir *IndexedRun) Run() *Run {
	return ir.run
}

// TouchedBy reports whether the absolute range [start, end] overlaps the
// range owned by this run.
func (ir *IndexedRun) TouchedBy(start, end int) bool {
	return start <= ir.endIndex && end >= ir.startIndex
}

// Replace substitutes the portion of this run's text that falls inside the
// absolute range [start, end] with replacement. The range is clamped to the
// run's own bounds, so callers may pass the full match range even when this
// run only owns part of it. Text outside the range is kept, run properties
// are not touched.
func (ir *IndexedRun) Replace(start, end int, replacement string) {
	text := ir.run.GetText()
	localStart := ir.localIndex(start)
	localEnd := ir.localIndex(end)
	ir.run.SetText(text[:localStart] + replacement + text[localEnd+1:])
}

// localIndex translates an absolute offset into a position within this
// run's text, clamping offsets that fall outside the run's range.
func (ir *IndexedRun) localIndex(global int) int {
	if global < ir.startIndex {
		return 0
	}
	if global > ir.endIndex {
		return ir.endIndex - ir.startIndex
	}
	return global - ir.startIndex
}
