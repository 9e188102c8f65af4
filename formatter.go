package docbot

import (
	"fmt"
	"strings"
)

// FormatEntry formats an entry as a single line: the display name, the
// first line of the description, and the declaring type when the entry was
// inherited from another type.
func FormatEntry(e *Entry) string {
	line := e.Name
	if desc, _, _ := strings.Cut(e.Desc, "\n"); desc != "" {
		line += "  " + desc
	}
	if e.DefinedBy != "" && !strings.HasPrefix(e.Name, e.DefinedBy+"::") {
		line += "  (defined by " + e.DefinedBy + ")"
	}
	return line
}

// FormatMatch formats a match for display. Ambiguous matches list every
// candidate under a header line.
func FormatMatch(m *Match) string {
	switch {
	case !m.Found():
		return m.Token + ": no match"
	case !m.Ambiguous():
		return FormatEntry(m.Entries[0])
	}

	parts := make([]string, 0, len(m.Entries)+1)
	parts = append(parts, fmt.Sprintf("%s: %d candidates", m.Token, len(m.Entries)))
	for _, e := range m.Entries {
		parts = append(parts, FormatEntry(e))
	}
	return strings.Join(parts, "\n")
}
