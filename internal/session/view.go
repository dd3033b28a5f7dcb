package session

import "github.com/phrazzld/flashcard-generator/internal/domain"

// CardView is one card as rendered.
type CardView struct {
	Index    int    `json:"index"`
	Number   int    `json:"number"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Revealed bool   `json:"revealed"`
}

// Face returns the label of the side currently showing.
func (c CardView) Face() string {
	if c.Revealed {
		return "Answer"
	}
	return "Question"
}

// Text returns the text of the side currently showing.
func (c CardView) Text() string {
	if c.Revealed {
		return c.Answer
	}
	return c.Question
}

// View is a plain projection of State for templates and JSON.
type View struct {
	Content   string     `json:"content"`
	NumCards  int        `json:"num_cards"`
	MinCards  int        `json:"min_cards"`
	MaxCards  int        `json:"max_cards"`
	Loading   bool       `json:"loading"`
	Notice    string     `json:"notice,omitempty"`
	NoticeID  uint64     `json:"notice_id,omitempty"`
	CanExport bool       `json:"can_export"`
	Cards     []CardView `json:"cards"`
}

// View projects s.
func (s State) View() View {
	v := View{
		Content:   s.content,
		NumCards:  s.numCards,
		MinCards:  domain.MinCards,
		MaxCards:  domain.MaxCards,
		Loading:   s.loading,
		CanExport: s.CanExport(),
		Cards:     make([]CardView, len(s.cards)),
	}
	if n, ok := s.Notice(); ok {
		v.Notice = n.Message
		v.NoticeID = n.ID
	}
	for i, c := range s.cards {
		v.Cards[i] = CardView{
			Index:    i,
			Number:   i + 1,
			Question: c.Question,
			Answer:   c.Answer,
			Revealed: s.revealed[i],
		}
	}
	return v
}
