package docstamp

// cleanEmptyRuns removes empty run elements from a paragraph.
// Runs whose text was consumed by a replacement are left holding empty
// strings; empty runs can cause Word to fail opening the document.
func cleanEmptyRuns(para *Paragraph) {
	if para == nil {
		return
	}

	var nonEmptyRuns []Run
	for _, run := range para.Runs {
		keepRun := false

		if run.Text != nil && run.Text.Content != "" {
			keepRun = true
		}

		// Keep runs with breaks even if they have no text
		if run.Break != nil {
			keepRun = true
		}

		if keepRun {
			nonEmptyRuns = append(nonEmptyRuns, run)
		}
	}

	para.Runs = nonEmptyRuns
}
