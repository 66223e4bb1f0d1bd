package editstack

import (
	"github.com/arran4/golang-textedit/internal/logger"
)

const DefaultCapacity = 100

// Stack is the undo/redo history of one text model. Entries before the cursor can be undone,
// entries after it redone. A Stack is not safe for concurrent use.
type Stack struct {
	entries  []*SingleModelEditStackData
	cursor   int // index of the next entry to redo
	capacity int
}

// NewStack returns an empty stack holding at most capacity entries; capacity <= 0 selects
// DefaultCapacity.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{
		entries:  make([]*SingleModelEditStackData, 0, capacity),
		capacity: capacity,
	}
}

// Push records a new entry. The redo branch is discarded and the oldest entry is evicted once
// the stack is full.
func (s *Stack) Push(e *SingleModelEditStackData) {
	if s.cursor < len(s.entries) {
		clear(s.entries[s.cursor:])
		s.entries = s.entries[:s.cursor]
	}
	s.entries = append(s.entries, e)
	if len(s.entries) > s.capacity {
		evicted := len(s.entries) - s.capacity
		s.entries = append(s.entries[:0], s.entries[evicted:]...)
		logger.Debugf("editstack: evicted %d entries", evicted)
	}
	s.cursor = len(s.entries)
	logger.Debugf("editstack: pushed %s, cursor %d of %d", e, s.cursor, len(s.entries))
}

// Undo steps back over the last applied entry and returns it.
func (s *Stack) Undo() (*SingleModelEditStackData, bool) {
	if s.cursor == 0 {
		return nil, false
	}
	s.cursor--
	return s.entries[s.cursor], true
}

// Redo steps forward over the next undone entry and returns it.
func (s *Stack) Redo() (*SingleModelEditStackData, bool) {
	if s.cursor == len(s.entries) {
		return nil, false
	}
	e := s.entries[s.cursor]
	s.cursor++
	return e, true
}

// Clear drops all entries. Call it when the model is reloaded.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
	s.cursor = 0
}

func (s *Stack) CanUndo() bool {
	return s.cursor > 0
}

func (s *Stack) CanRedo() bool {
	return s.cursor < len(s.entries)
}

// Len returns the number of entries, undone ones included.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Save encodes the applied entries, oldest first.
func (s *Stack) Save() [][]byte {
	out := make([][]byte, s.cursor)
	for i, e := range s.entries[:s.cursor] {
		out[i] = e.Serialize()
	}
	return out
}

// Load replaces the stack with the decoded entries, all of them applied. Entries that fail to
// decode are logged and skipped; the rest are kept. It returns the number of entries loaded.
func (s *Stack) Load(encoded [][]byte) int {
	s.Clear()
	loaded := 0
	for i, buf := range encoded {
		e, err := Deserialize(buf)
		if err != nil {
			logger.Warnf("editstack: dropping entry %d: %v", i, err)
			continue
		}
		s.Push(e)
		loaded++
	}
	return loaded
}
