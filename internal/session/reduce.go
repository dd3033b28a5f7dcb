package session

import (
	"github.com/phrazzld/flashcard-generator/internal/domain"
)

// Action is an input to Reduce.
type Action interface {
	isAction()
}

// SetContent replaces the text to generate from.
type SetContent struct{ Content string }

// SetNumCards selects how many cards to request. Values are clamped to
// [domain.MinCards, domain.MaxCards].
type SetNumCards struct{ N int }

// Generate asks for a new card set from the current content.
type Generate struct{}

// GenerationSucceeded delivers the result of the request identified by Token.
type GenerationSucceeded struct {
	Token uint64
	Cards domain.CardSet
}

// GenerationFailed reports that the request identified by Token failed.
type GenerationFailed struct {
	Token uint64
}

// Toggle flips the reveal flag of one card.
type Toggle struct{ Index int }

// DismissNotice clears the notice with the given ID.
type DismissNotice struct{ ID uint64 }

func (SetContent) isAction()          {}
func (SetNumCards) isAction()         {}
func (Generate) isAction()            {}
func (GenerationSucceeded) isAction() {}
func (GenerationFailed) isAction()    {}
func (Toggle) isAction()              {}
func (DismissNotice) isAction()       {}

// CommandKind identifies the side effect a Command asks for.
type CommandKind int

const (
	// IssueRequest asks the caller to send Request and report back with
	// GenerationSucceeded or GenerationFailed carrying Token.
	IssueRequest CommandKind = iota + 1
	// ScheduleDismiss asks the caller to send DismissNotice{NoticeID} later.
	ScheduleDismiss
)

// Command is a side effect requested by a transition.
type Command struct {
	Kind     CommandKind
	Token    uint64
	Request  domain.GenerationRequest
	NoticeID uint64
}

// Reduce applies a to s. It never mutates s; the returned State shares no
// mutable data with it.
func Reduce(s State, a Action) (State, *Command) {
	switch a := a.(type) {
	case SetContent:
		s.content = a.Content
		return s, nil

	case SetNumCards:
		s.numCards = clampCards(a.N)
		return s, nil

	case Generate:
		if s.loading {
			return s, nil
		}
		if domain.IsBlank(s.content) {
			s = s.withNotice(EmptyContentMessage)
			return s, &Command{Kind: ScheduleDismiss, NoticeID: s.notice.ID}
		}
		s.lastToken++
		s.pending = s.lastToken
		s.loading = true
		return s, &Command{
			Kind:    IssueRequest,
			Token:   s.pending,
			Request: domain.GenerationRequest{Content: s.content, NumCards: s.numCards},
		}

	case GenerationSucceeded:
		if !s.loading || a.Token != s.pending {
			return s, nil
		}
		s.cards = a.Cards.Clone()
		s.revealed = nil
		s.loading = false
		s.pending = 0
		s.notice = nil
		return s, nil

	case GenerationFailed:
		if !s.loading || a.Token != s.pending {
			return s, nil
		}
		s.loading = false
		s.pending = 0
		s = s.withNotice(FailureMessage)
		return s, &Command{Kind: ScheduleDismiss, NoticeID: s.notice.ID}

	case Toggle:
		if a.Index < 0 || a.Index >= len(s.cards) {
			return s, nil
		}
		next := make(map[int]bool, len(s.revealed)+1)
		for k, v := range s.revealed {
			next[k] = v
		}
		next[a.Index] = !next[a.Index]
		s.revealed = next
		return s, nil

	case DismissNotice:
		if s.notice != nil && s.notice.ID == a.ID {
			s.notice = nil
		}
		return s, nil
	}

	return s, nil
}

func clampCards(n int) int {
	switch {
	case n < domain.MinCards:
		return domain.MinCards
	case n > domain.MaxCards:
		return domain.MaxCards
	default:
		return n
	}
}
