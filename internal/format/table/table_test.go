package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"System", "12"},
		{"Internet", "3"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"System    12",
		"Internet   3",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected table (-want +got):\n%s", diff)
	}
}

func TestFormatPadsShortRowsAndCountsWideRunes(t *testing.T) {
	rows := [][]string{
		{"日本", "a"},
		{"x"},
	}
	got := Format(rows, nil)
	want := []string{
		"日本  a",
		"x     ",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected table (-want +got):\n%s", diff)
	}
}

func TestWithHeaderAddsRule(t *testing.T) {
	got := WithHeader([]string{"CATEGORY", "APPS"}, [][]string{{"Fun", "2"}}, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"CATEGORY  APPS",
		"--------------",
		"Fun          2",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected table (-want +got):\n%s", diff)
	}
	if Format(nil, nil) != nil {
		t.Fatal("expected nil for no rows")
	}
}
