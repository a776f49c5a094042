package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMisspellingsCounts(t *testing.T) {
	m := NewMisspellings()
	m.Add("a.ftl:one", []string{"tokken", "sbagliatto"})
	m.Add("b.ftl:two", []string{"tokken"})
	m.Add("c.ftl:empty", nil)

	if len(m.Errors) != 2 {
		t.Errorf("strings with errors = %d, want 2", len(m.Errors))
	}
	if m.TotalOccurrences != 3 {
		t.Errorf("TotalOccurrences = %d, want 3", m.TotalOccurrences)
	}
	if m.Frequency["tokken"] != 2 {
		t.Errorf("Frequency[tokken] = %d, want 2", m.Frequency["tokken"])
	}
	if !m.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestPrintSummaryThreshold(t *testing.T) {
	m := NewMisspellings()
	for i := 0; i < 4; i++ {
		m.Add("a.ftl:id"+strings.Repeat("x", i), []string{"frequente"})
	}
	m.Add("b.ftl:rare", []string{"raro"})

	var buf strings.Builder
	m.PrintSummary(&buf, 4)
	out := buf.String()

	if !strings.Contains(out, "Total number of strings with errors: 5") {
		t.Errorf("missing strings-with-errors count in %q", out)
	}
	if !strings.Contains(out, "frequente: 4") {
		t.Errorf("expected frequent token listed in %q", out)
	}
	if strings.Contains(out, "raro") {
		t.Errorf("token below threshold must not be listed in %q", out)
	}
}

func TestPrintSummaryEmpty(t *testing.T) {
	var buf strings.Builder
	NewMisspellings().PrintSummary(&buf, 4)
	if buf.Len() != 0 {
		t.Errorf("expected no summary output for clean run, got %q", buf.String())
	}
}

func TestWriteQuoteErrorsSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.json")
	if err := WriteQuoteErrors(path, []string{"z.ftl:late", "a.ftl:early"}); err != nil {
		t.Fatalf("WriteQuoteErrors: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "[\n  \"a.ftl:early\",\n  \"z.ftl:late\"\n]\n"
	if string(data) != want {
		t.Errorf("quotes file = %q, want %q", data, want)
	}
}

func TestMisspellingsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spelling.json")
	m := NewMisspellings()
	m.Add("b.ftl:two", []string{"secondo"})
	m.Add("a.ftl:one", []string{"primo"})

	if err := m.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// Keys come out sorted regardless of insertion order.
	want := `{
  "a.ftl:one": [
    "primo"
  ],
  "b.ftl:two": [
    "secondo"
  ]
}
`
	if string(data) != want {
		t.Errorf("spelling file = %q, want %q", data, want)
	}
}
