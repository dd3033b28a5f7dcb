package session

import (
	"github.com/phrazzld/flashcard-generator/internal/domain"
)

// User-facing notice texts.
const (
	EmptyContentMessage = "Please enter some content first"
	FailureMessage      = "Failed to generate flashcards. Please try again."
)

// Notice is a dismissible message shown to the user. ID identifies this
// particular showing so a late dismissal can't clear a newer notice.
type Notice struct {
	ID      uint64
	Message string
}

// State is one snapshot of the view. The zero value is not ready for use;
// start from New.
type State struct {
	content  string
	numCards int

	cards    domain.CardSet
	revealed map[int]bool

	loading   bool
	pending   uint64
	lastToken uint64

	notice       *Notice
	lastNoticeID uint64
}

// New returns the initial state: no cards, no notice, DefaultCards selected.
func New() State {
	return State{numCards: domain.DefaultCards}
}

// Content returns the text entered by the user.
func (s State) Content() string { return s.content }

// NumCards returns the selected card count.
func (s State) NumCards() int { return s.numCards }

// Cards returns a copy of the current card set.
func (s State) Cards() domain.CardSet { return s.cards.Clone() }

// Revealed reports whether the answer side of card i is showing.
func (s State) Revealed(i int) bool { return s.revealed[i] }

// Loading reports whether a generation request is in flight.
func (s State) Loading() bool { return s.loading }

// PendingToken returns the token of the in-flight request, or 0.
func (s State) PendingToken() uint64 { return s.pending }

// Notice returns the current notice, if any.
func (s State) Notice() (Notice, bool) {
	if s.notice == nil {
		return Notice{}, false
	}
	return *s.notice, true
}

// CanExport reports whether there is anything to export.
func (s State) CanExport() bool { return !s.cards.Empty() }

func (s State) withNotice(msg string) State {
	s.lastNoticeID++
	s.notice = &Notice{ID: s.lastNoticeID, Message: msg}
	return s
}
