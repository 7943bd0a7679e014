package output

import (
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	// Tests compare raw strings; ANSI sequences would make that brittle.
	SetNoColor(true)
	m.Run()
}

func TestTableRender(t *testing.T) {
	tbl := NewTable("Factor", "Score")
	tbl.AddRow("length", "8/10")
	tbl.AddRow("hashtags", "10/10")

	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (header, rule, two rows):\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Factor") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[2], "length") || !strings.Contains(lines[2], "8/10") {
		t.Errorf("first row = %q", lines[2])
	}

	// Columns align on the widest cell.
	if !strings.Contains(lines[3], "hashtags  10/10") {
		t.Errorf("rows not aligned: %q", lines[3])
	}
}

func TestTableShortAndLongRows(t *testing.T) {
	tbl := NewTable("A", "B", "C")
	tbl.AddRow("only")
	tbl.AddRow("one", "two", "three", "extra is dropped")

	out := tbl.Render()
	if strings.Contains(out, "extra") {
		t.Errorf("extra cell leaked into output:\n%s", out)
	}
}

func TestEmptyTable(t *testing.T) {
	if out := NewTable().Render(); out != "" {
		t.Errorf("empty table rendered %q", out)
	}
}

func TestScoreBar(t *testing.T) {
	bar := ScoreBar(80, 10)
	if !strings.Contains(bar, "80/100") {
		t.Errorf("ScoreBar(80) = %q, missing score text", bar)
	}
	if got := strings.Count(bar, "█"); got != 8 {
		t.Errorf("ScoreBar(80, 10) filled %d cells, want 8", got)
	}

	// Out-of-range scores clamp instead of panicking.
	if bar := ScoreBar(150, 10); strings.Count(bar, "█") != 10 {
		t.Errorf("ScoreBar(150) did not clamp: %q", bar)
	}
	if bar := ScoreBar(-5, 10); strings.Count(bar, "█") != 0 {
		t.Errorf("ScoreBar(-5) did not clamp: %q", bar)
	}
}

func TestFactorBar(t *testing.T) {
	bar := FactorBar(7)
	if got := strings.Count(bar, "▰"); got != 7 {
		t.Errorf("FactorBar(7) filled %d cells, want 7", got)
	}
	if !strings.Contains(bar, "7/10") {
		t.Errorf("FactorBar(7) = %q, missing score text", bar)
	}
}
