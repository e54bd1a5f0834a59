package reload

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/timzifer/wellcad/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestUniquePathsFiltersDuplicatesAndEmptyValues(t *testing.T) {
	got := uniquePaths([]string{"", "/tmp/a", "/tmp/b", "/tmp/a", "/tmp/c", "/tmp/b"})
	want := []string{"/tmp/a", "/tmp/b", "/tmp/c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("uniquePaths() = %v, want %v", got, want)
	}
}

func TestWatcherTracksConfigTemplatesAndPayloads(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "jobs.yaml")
	template := filepath.Join(dir, "layout.wdt")
	payload := filepath.Join(dir, "resample.ini")
	writeFile(t, configFile, "jobs: []")
	writeFile(t, template, "wdt")
	writeFile(t, payload, "[ResampleLog]")

	cfg := &config.Config{
		Source: configFile,
		Jobs: []config.JobConfig{{
			Name:     "a",
			Template: filepath.Join(dir, "missing.wdt"),
			Steps: []config.StepConfig{
				{Kind: "template", Path: template},
				{Kind: "process", Config: payload},
				{Kind: "process", Config: "SamplingRate=0.1"},
				{Kind: "export", Path: filepath.Join(dir, "out.las")},
			},
		}},
	}

	watcher, err := NewWatcher(configFile, cfg)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	got := watcher.Files()
	want := []string{configFile, template, payload}
	if len(got) != len(want) {
		t.Fatalf("tracked %v, want %v", got, want)
	}
	for _, path := range want {
		if _, ok := watcher.files[path]; !ok {
			t.Fatalf("%s not tracked", path)
		}
	}
}

func TestWatcherCheckDetectsChangesAndRemovals(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.yaml")
	fileB := filepath.Join(dir, "b.ini")
	writeFile(t, fileA, "first")
	writeFile(t, fileB, "second")

	cfg := &config.Config{
		Source: fileA,
		Jobs:   []config.JobConfig{{Name: "a", Steps: []config.StepConfig{{Kind: "process", Config: fileB}}}},
	}
	watcher, err := NewWatcher("", cfg)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if changed := watcher.Check(); len(changed) != 0 {
		t.Fatalf("expected no changes, got %v", changed)
	}

	later := time.Now().Add(2 * time.Second)
	writeFile(t, fileA, "first, edited")
	if err := os.Chtimes(fileA, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if err := os.Remove(fileB); err != nil {
		t.Fatalf("remove: %v", err)
	}

	changed := watcher.Check()
	want := []string{fileA, fileB}
	if !reflect.DeepEqual(changed, want) {
		t.Fatalf("Check() = %v, want %v", changed, want)
	}
}

func TestNilWatcher(t *testing.T) {
	var w *Watcher
	if err := w.Update("", nil); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if w.Check() != nil || w.Files() != nil {
		t.Fatalf("nil watcher must report nothing")
	}
}
