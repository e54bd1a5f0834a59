package params

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Section is a named group of parameters rendered as an INI section.
type Section struct {
	Name string
	*Builder
}

// NewSection returns an empty section called name.
func NewSection(name string) *Section {
	return &Section{Name: name, Builder: New()}
}

// WriteTo renders the section header followed by one Key=Value line per entry.
func (s *Section) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "[%s]\n", s.Name)
	for _, e := range s.entries {
		fmt.Fprintf(&buf, "%s=%s\n", e.key, e.value)
	}
	return buf.WriteTo(w)
}

// File is an INI configuration payload made of sections.
type File struct {
	sections []*Section
}

// Section returns the section called name, creating it when missing.
func (f *File) Section(name string) *Section {
	for _, s := range f.sections {
		if strings.EqualFold(s.Name, name) {
			return s
		}
	}
	s := NewSection(name)
	f.sections = append(f.sections, s)
	return s
}

// Err joins the formatter errors of all sections.
func (f *File) Err() error {
	var errs []error
	for _, s := range f.sections {
		if err := s.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("params: %d section(s) invalid: %w", len(errs), errors.Join(errs...))
}

// WriteTo renders every section separated by a blank line.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, s := range f.sections {
		if i > 0 {
			n, err := io.WriteString(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := s.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteFile writes the payload to path so it can be passed as a config file.
func (f *File) WriteFile(path string) error {
	if err := f.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write config payload: %w", err)
	}
	return nil
}
