package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourceFiles returns the files a configuration reads besides the borehole
// documents themselves: the configuration file, templates and INI payloads.
// Config values that are not existing files (inline parameters) are skipped.
func SourceFiles(cfg *Config) []string {
	if cfg == nil {
		return nil
	}
	files := make(map[string]struct{})
	add := func(path string) {
		path = strings.TrimSpace(path)
		if path == "" || strings.Contains(path, "=") {
			return
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		files[abs] = struct{}{}
	}
	add(cfg.Source)
	for _, job := range cfg.Jobs {
		add(job.Template)
		add(job.ImportConfig)
		for _, step := range job.Steps {
			add(step.Config)
			if step.Kind == "template" {
				add(step.Path)
			}
		}
	}
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
