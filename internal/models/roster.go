package models

import "strings"

// RosterEntry identifies one student targeted by an assignment batch,
// by portal id, email, or both. At least one must be set.
type RosterEntry struct {
	StudentID string `json:"student_id,omitempty"`
	Email     string `json:"email,omitempty"`
}

// IsZero reports whether the entry identifies nobody.
func (e RosterEntry) IsZero() bool {
	return strings.TrimSpace(e.StudentID) == "" && strings.TrimSpace(e.Email) == ""
}

func (e RosterEntry) key() string {
	if id := strings.TrimSpace(e.StudentID); id != "" {
		return "id:" + id
	}
	return "email:" + strings.ToLower(strings.TrimSpace(e.Email))
}

// Roster is the resolved set of students for an assignment batch. It is
// the union of a class membership, an explicit id list and an explicit
// email list, produced externally.
type Roster []RosterEntry

// Normalize trims identifiers, drops empty entries and de-duplicates
// the union, keeping first occurrence order.
func (r Roster) Normalize() Roster {
	seen := make(map[string]bool, len(r))
	out := make(Roster, 0, len(r))
	for _, e := range r {
		e.StudentID = strings.TrimSpace(e.StudentID)
		e.Email = strings.TrimSpace(e.Email)
		if e.IsZero() {
			continue
		}
		k := e.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, e)
	}
	return out
}
