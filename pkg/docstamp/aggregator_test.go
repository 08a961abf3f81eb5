package docstamp

import (
	"testing"
)

// makeRun builds a run holding the given text.
func makeRun(text string) *Run {
	return &Run{Text: &Text{Content: text}}
}

// makeAggregator builds an aggregator over fresh runs with the given texts.
func makeAggregator(texts ...string) *RunAggregator {
	a := NewRunAggregator()
	for _, text := range texts {
		a.AddRun(makeRun(text))
	}
	return a
}

func runTexts(a *RunAggregator) []string {
	var texts []string
	for _, run := range a.Runs() {
		texts = append(texts, run.GetText())
	}
	return texts
}

func equalTexts(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRunAggregator_PartitionInvariant(t *testing.T) {
	a := makeAggregator("Hello ", "World", "!", "again")

	if len(a.runs) == 0 {
		t.Fatal("expected tracked runs")
	}
	if a.runs[0].StartIndex() != 0 {
		t.Errorf("first run should start at 0, got %d", a.runs[0].StartIndex())
	}
	for i := 0; i < len(a.runs)-1; i++ {
		if a.runs[i].EndIndex()+1 != a.runs[i+1].StartIndex() {
			t.Errorf("runs %d and %d are not contiguous: end=%d, next start=%d",
				i, i+1, a.runs[i].EndIndex(), a.runs[i+1].StartIndex())
		}
	}
	if got := len(a.Text()); got != a.currentPosition {
		t.Errorf("aggregate length = %d, currentPosition = %d", got, a.currentPosition)
	}
}

func TestRunAggregator_Text(t *testing.T) {
	a := makeAggregator("Hello ", "World")
	if got := a.Text(); got != "Hello World" {
		t.Errorf("Text() = %q, want %q", got, "Hello World")
	}

	// Idempotent without mutation in between
	if first, second := a.Text(), a.Text(); first != second {
		t.Errorf("Text() not stable: %q then %q", first, second)
	}
}

func TestRunAggregator_SkipsEmptyRuns(t *testing.T) {
	a := NewRunAggregator()
	a.AddRun(makeRun("Hello"))
	a.AddRun(makeRun(""))        // empty text
	a.AddRun(&Run{})             // no text element at all
	a.AddRun(&Run{Break: &Break{}}) // break only
	posAfter := a.currentPosition
	a.AddRun(makeRun("World"))

	if posAfter != 5 {
		t.Errorf("empty runs advanced the cursor: got %d, want 5", posAfter)
	}
	if len(a.Runs()) != 2 {
		t.Errorf("expected 2 tracked runs, got %d", len(a.Runs()))
	}
	if got := a.Text(); got != "HelloWorld" {
		t.Errorf("Text() = %q, want %q", got, "HelloWorld")
	}
}

func TestRunAggregator_ReplaceFirst(t *testing.T) {
	tests := []struct {
		name        string
		texts       []string
		placeholder string
		replacement string
		want        bool
		wantTexts   []string
		wantText    string
	}{
		{
			name:        "single run replacement",
			texts:       []string{"Hello ", "World"},
			placeholder: "World",
			replacement: "Earth",
			want:        true,
			wantTexts:   []string{"Hello ", "Earth"},
			wantText:    "Hello Earth",
		},
		{
			name:        "match spanning two runs",
			texts:       []string{"Hel", "lo World"},
			placeholder: "Hello",
			replacement: "Goodbye",
			want:        true,
			wantTexts:   []string{"Goodbye", " World"},
			wantText:    "Goodbye World",
		},
		{
			name:        "interior runs are cleared",
			texts:       []string{"a", "b", "c", "d"},
			placeholder: "bc",
			replacement: "X",
			want:        true,
			wantTexts:   []string{"a", "X", "", "d"},
			wantText:    "aXd",
		},
		{
			name:        "match starting and ending mid-run",
			texts:       []string{"abcdef", "ghijkl"},
			placeholder: "defghi",
			replacement: "X",
			want:        true,
			wantTexts:   []string{"abcX", "jkl"},
			wantText:    "abcXjkl",
		},
		{
			name:        "match spanning many runs",
			texts:       []string{"${", "na", "me", "}"},
			placeholder: "${name}",
			replacement: "John",
			want:        true,
			wantTexts:   []string{"John", "", "", ""},
			wantText:    "John",
		},
		{
			name:        "replacement with empty string deletes",
			texts:       []string{"Hello ", "World"},
			placeholder: "World",
			replacement: "",
			want:        true,
			wantTexts:   []string{"Hello ", ""},
			wantText:    "Hello ",
		},
		{
			name:        "absent placeholder is a no-op",
			texts:       []string{"Hello ", "World"},
			placeholder: "zzz",
			replacement: "Q",
			want:        false,
			wantTexts:   []string{"Hello ", "World"},
			wantText:    "Hello World",
		},
		{
			name:        "empty placeholder is rejected",
			texts:       []string{"Hello ", "World"},
			placeholder: "",
			replacement: "Q",
			want:        false,
			wantTexts:   []string{"Hello ", "World"},
			wantText:    "Hello World",
		},
		{
			name:        "only the first occurrence is replaced",
			texts:       []string{"aa", "aa"},
			placeholder: "aa",
			replacement: "b",
			want:        true,
			wantTexts:   []string{"b", "aa"},
			wantText:    "baa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := makeAggregator(tt.texts...)
			got := a.ReplaceFirst(tt.placeholder, tt.replacement)

			if got != tt.want {
				t.Errorf("ReplaceFirst() = %v, want %v", got, tt.want)
			}
			if texts := runTexts(a); !equalTexts(texts, tt.wantTexts) {
				t.Errorf("run texts = %q, want %q", texts, tt.wantTexts)
			}
			if text := a.Text(); text != tt.wantText {
				t.Errorf("Text() = %q, want %q", text, tt.wantText)
			}
		})
	}
}

func TestRunAggregator_ReplaceFirstKeepsProperties(t *testing.T) {
	run := &Run{
		Properties: &RunProperties{Bold: &Empty{}},
		Text:       &Text{Content: "Hello World"},
	}
	a := NewRunAggregator()
	a.AddRun(run)

	if !a.ReplaceFirst("World", "Earth") {
		t.Fatal("expected a replacement")
	}
	if run.Properties == nil || run.Properties.Bold == nil {
		t.Error("run properties should survive a replacement")
	}
	if got := run.GetText(); got != "Hello Earth" {
		t.Errorf("run text = %q, want %q", got, "Hello Earth")
	}
}

func TestNewParagraphAggregator(t *testing.T) {
	para := &Paragraph{
		Runs: []Run{
			{Text: &Text{Content: "Hel"}},
			{}, // empty, skipped
			{Text: &Text{Content: "lo"}},
		},
	}

	a := NewParagraphAggregator(para)
	if got := a.Text(); got != "Hello" {
		t.Errorf("Text() = %q, want %q", got, "Hello")
	}

	// Replacements must write through to the paragraph's own runs.
	a.ReplaceFirst("Hello", "Bye")
	if got := para.GetText(); got != "Bye" {
		t.Errorf("paragraph text = %q, want %q", got, "Bye")
	}

	if a := NewParagraphAggregator(nil); a.Text() != "" {
		t.Error("nil paragraph should aggregate to empty text")
	}
}
