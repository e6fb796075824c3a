// Package history is the append-only audit log embedded in clients and tenders.
package history

import (
	"time"

	"tender-crm-backend/internal/domain/actor"
)

type Entry struct {
	UserID    string    `json:"userId"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}

// NewEntry stamps an entry for the given actor at now (UTC).
func NewEntry(a actor.Actor, action, details string, now time.Time) Entry {
	return Entry{
		UserID:    a.ID,
		User:      a.Name,
		Action:    action,
		Timestamp: now.UTC(),
		Details:   details,
	}
}

// Log is ordered by insertion. Only Append mutates it.
type Log []Entry

func (l *Log) Append(e Entry) { *l = append(*l, e) }

func (l Log) Len() int { return len(l) }

// Last returns the most recent entry, if any.
func (l Log) Last() (Entry, bool) {
	if len(l) == 0 {
		return Entry{}, false
	}
	return l[len(l)-1], true
}
