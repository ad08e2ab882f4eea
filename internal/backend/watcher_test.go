package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func nextEvent(t *testing.T, w *Watcher, timeout time.Duration) (Event, bool) {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		return evt, ok
	case <-time.After(timeout):
		return Event{}, false
	}
}

func TestWatcherReportsDebouncedChange(t *testing.T) {
	dir := t.TempDir()
	menuPath := filepath.Join(dir, "menu.xml")
	if err := os.WriteFile(menuPath, []byte("<openbox_menu/>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher([]Target{
		{Kind: KindMenu, Path: menuPath},
		{Kind: KindProfile, Path: ""},
	}, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	t.Cleanup(func() {
		w.Stop()
		w.Wait()
	})

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(menuPath, []byte("<openbox_menu></openbox_menu>"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	evt, ok := nextEvent(t, w, 2*time.Second)
	if !ok {
		t.Fatalf("expected a menu event")
	}
	if evt.Kind != KindMenu || evt.Path != menuPath {
		t.Fatalf("unexpected event %+v", evt)
	}
	if extra, ok := nextEvent(t, w, 200*time.Millisecond); ok {
		t.Fatalf("expected burst coalesced into one event, got extra %+v", extra)
	}
}

func TestWatcherSeesAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "arcmenu.json")
	if err := os.WriteFile(cfgPath, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher([]Target{{Kind: KindSettings, Path: cfgPath}}, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	t.Cleanup(func() {
		w.Stop()
		w.Wait()
	})

	tmp := filepath.Join(dir, "arcmenu.json.tmp")
	if err := os.WriteFile(tmp, []byte(`{"window":{}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Rename(tmp, cfgPath); err != nil {
		t.Fatalf("rename: %v", err)
	}

	evt, ok := nextEvent(t, w, 2*time.Second)
	if !ok || evt.Kind != KindSettings {
		t.Fatalf("expected settings event, got %+v (%v)", evt, ok)
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	menuPath := filepath.Join(dir, "menu.xml")
	w, err := NewWatcher([]Target{{Kind: KindMenu, Path: menuPath}}, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	t.Cleanup(func() {
		w.Stop()
		w.Wait()
	})
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if evt, ok := nextEvent(t, w, 200*time.Millisecond); ok {
		t.Fatalf("expected no event, got %+v", evt)
	}
}

func TestWatcherSetTargetsFollowsMovedMenu(t *testing.T) {
	oldDir, newDir := t.TempDir(), t.TempDir()
	oldMenu := filepath.Join(oldDir, "menu.xml")
	newMenu := filepath.Join(newDir, "menu.xml")
	w, err := NewWatcher([]Target{{Kind: KindMenu, Path: oldMenu}}, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	t.Cleanup(func() {
		w.Stop()
		w.Wait()
	})

	w.SetTargets([]Target{{Kind: KindMenu, Path: newMenu}})
	if err := os.WriteFile(oldMenu, []byte("<openbox_menu/>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if evt, ok := nextEvent(t, w, 200*time.Millisecond); ok {
		t.Fatalf("expected the old menu to be ignored, got %+v", evt)
	}
	if err := os.WriteFile(newMenu, []byte("<openbox_menu/>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	evt, ok := nextEvent(t, w, 2*time.Second)
	if !ok || evt.Kind != KindMenu || filepath.Clean(evt.Path) != newMenu {
		t.Fatalf("expected event for the new menu, got %+v (%v)", evt, ok)
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	w, err := NewWatcher(nil, 0)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.Stop()
	w.Wait()
	if _, ok := <-w.Events(); ok {
		t.Fatalf("expected closed events channel")
	}
}

func TestDebouncerOrdersByKind(t *testing.T) {
	d := newDebouncer(time.Millisecond)
	defer d.stop()
	if d.C() != nil {
		t.Fatalf("expected nil channel with nothing pending")
	}
	d.add(KindProfile, "/face")
	d.add(KindMenu, "/menu.xml")
	d.add(KindMenu, "/menu.xml")
	<-d.C()
	got := d.flush()
	if len(got) != 2 || got[0].Kind != KindMenu || got[1].Kind != KindProfile {
		t.Fatalf("unexpected flush %+v", got)
	}
	if d.C() != nil {
		t.Fatalf("expected nothing pending after flush")
	}
}

func TestKindString(t *testing.T) {
	if KindSettings.String() != "settings" || Kind(9).String() != "kind(9)" {
		t.Fatalf("unexpected kind names")
	}
}
