package state

import (
	"testing"

	"github.com/atomicstack/arcmenu/internal/menu"
	"github.com/google/go-cmp/cmp"
)

func entryNames(entries []menu.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func sampleCategories() *menu.CategoryMap {
	c := menu.NewCategoryMap()
	c.Add("Internet", menu.Entry{Name: "Firefox", Exec: "firefox", Comment: "Web browser"})
	c.Add("Internet", menu.Entry{Name: "Transmission", Exec: "transmission-gtk", Comment: "Torrent client"})
	c.Add("System", menu.Entry{Name: "Htop", Exec: "htop", Comment: "Process viewer"})
	c.Add("System", menu.Entry{Name: "Firefox", Exec: "firefox", Comment: "Web browser"})
	c.Add("System", menu.Entry{Name: "Firewall", Exec: "firewallstate", Comment: "Firewall setup"})
	c.Add("Fun", menu.Entry{Name: "Mines", Exec: "gnomine", Comment: "Find the hidden FIRE"})
	return c
}

func TestSearchBlankIsInactive(t *testing.T) {
	for _, query := range []string{"", "   ", "\t"} {
		results, active := Search(sampleCategories(), nil, query)
		if active || results != nil {
			t.Fatalf("expected inactive search for %q", query)
		}
	}
}

func TestSearchMatchesNameAndCommentCaseInsensitively(t *testing.T) {
	results, active := Search(sampleCategories(), nil, "fire")
	if !active {
		t.Fatal("expected active search")
	}
	if diff := cmp.Diff([]string{"Firefox", "Firefox", "Firewall", "Mines"}, entryNames(results)); diff != "" {
		t.Fatalf("unexpected results (-want +got):\n%s", diff)
	}
}

func TestSearchKeepsEntryListedInSeveralCategories(t *testing.T) {
	results, _ := Search(sampleCategories(), []string{"Internet", "System"}, "firefox")
	if len(results) != 2 {
		t.Fatalf("expected one result per category, got %v", entryNames(results))
	}
	if results[0].Category != "Internet" || results[1].Category != "System" {
		t.Fatalf("expected results in category order, got %q and %q", results[0].Category, results[1].Category)
	}
}

func TestSearchMatchesQueryAsTyped(t *testing.T) {
	results, active := Search(sampleCategories(), nil, " fox")
	if !active {
		t.Fatal("expected query with a leading space to be active")
	}
	if len(results) != 0 {
		t.Fatalf("expected leading space to be part of the match, got %v", entryNames(results))
	}
	results, _ = Search(sampleCategories(), nil, "web b")
	if diff := cmp.Diff([]string{"Firefox", "Firefox"}, entryNames(results)); diff != "" {
		t.Fatalf("unexpected results (-want +got):\n%s", diff)
	}
}

func TestSearchRestrictsToNamedCategories(t *testing.T) {
	results, _ := Search(sampleCategories(), []string{"Fun", "System"}, "fire")
	if diff := cmp.Diff([]string{"Mines", "Firefox", "Firewall"}, entryNames(results)); diff != "" {
		t.Fatalf("unexpected results (-want +got):\n%s", diff)
	}
}

func TestSearchNoMatchesIsActiveAndEmpty(t *testing.T) {
	results, active := Search(sampleCategories(), nil, "zzz")
	if !active || len(results) != 0 {
		t.Fatalf("expected active empty search, got %v %v", results, active)
	}
}

func TestBestMatchIndex(t *testing.T) {
	entries := []menu.Entry{
		{Name: "Mines", Comment: "Find the hidden fire"},
		{Name: "Firewall"},
		{Name: "Fire"},
		{Name: "Transmission"},
	}
	cases := []struct {
		query string
		want  int
	}{
		{"fire", 2},
		{"firew", 1},
		{"hidden", 0},
		{"trnsm", 3},
		{"", 0},
	}
	for _, tc := range cases {
		if got := BestMatchIndex(entries, tc.query); got != tc.want {
			t.Fatalf("BestMatchIndex(%q) = %d, want %d", tc.query, got, tc.want)
		}
	}
	if BestMatchIndex(nil, "x") != -1 {
		t.Fatal("expected -1 for no entries")
	}
}

func TestBestMatchIndexRanksContainedNames(t *testing.T) {
	entries := []menu.Entry{
		{Name: "Firefox Developer Edition"},
		{Name: "Firefox"},
		{Name: "Foxit Reader", Comment: "PDF viewer"},
	}
	if got := BestMatchIndex(entries, "efox"); got != 1 {
		t.Fatalf("expected the closest name to win, got %d", got)
	}
	if got := BestMatchIndex(entries, "pdf"); got != 2 {
		t.Fatalf("expected comment match, got %d", got)
	}
}
