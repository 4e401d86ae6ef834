package validation

import (
	"fmt"
	"strings"
)

// Level is the severity of an entry.
type Level int

const (
	LevelWarning Level = iota
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// MarshalText lets levels appear by name in JSON and YAML output.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Entry is one finding.
type Entry struct {
	Level Level `json:"level" yaml:"level"`
	// Context names the object the finding belongs to, e.g. a group name.
	Context     string `json:"context" yaml:"context"`
	Path        string `json:"path,omitempty" yaml:"path,omitempty"`
	Message     string `json:"message" yaml:"message"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	Solution    string `json:"solution,omitempty" yaml:"solution,omitempty"`
}

func (e Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Level, e.Context)
	if e.Path != "" {
		fmt.Fprintf(&b, " '%s'", e.Path)
	}
	fmt.Fprintf(&b, ": %s", e.Message)
	if e.Solution != "" {
		fmt.Fprintf(&b, " (%s)", e.Solution)
	}
	return b.String()
}

// Report is an ordered list of entries. The zero value is an empty, valid
// report.
type Report struct {
	entries []Entry
}

// Add appends entries in order.
func (r *Report) Add(entries ...Entry) {
	r.entries = append(r.entries, entries...)
}

// Entries returns a copy of the entries.
func (r *Report) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

func (r *Report) Len() int { return len(r.entries) }

// IsValid reports whether the report holds no error-level entries.
func (r *Report) IsValid() bool {
	for _, e := range r.entries {
		if e.Level == LevelError {
			return false
		}
	}
	return true
}

func (r *Report) String() string {
	lines := make([]string, len(r.entries))
	for i, e := range r.entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}

// Err returns nil for a valid report, otherwise one error listing every
// entry.
func (r *Report) Err() error {
	if r.IsValid() {
		return nil
	}
	lines := make([]string, len(r.entries))
	for i, e := range r.entries {
		lines[i] = e.String()
	}
	return fmt.Errorf("validation failed:\n- %s", strings.Join(lines, "\n- "))
}
