package generation

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"
)

//go:embed prompts/flashcards.tmpl
var promptFS embed.FS

const defaultPromptName = "prompts/flashcards.tmpl"

// PromptData is the data passed to the prompt template.
type PromptData struct {
	Content  string
	NumCards int
}

// Prompt renders generation prompts from a text template.
type Prompt struct {
	tmpl *template.Template
}

// LoadPrompt parses the template at path, or the embedded default when path
// is empty.
func LoadPrompt(path string) (*Prompt, error) {
	var (
		src []byte
		err error
	)
	if path == "" {
		src, err = promptFS.ReadFile(defaultPromptName)
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template: %v", ErrInvalidConfig, err)
	}

	tmpl, err := template.New("flashcards").Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return &Prompt{tmpl: tmpl}, nil
}

// Render produces the prompt for content and numCards.
func (p *Prompt) Render(content string, numCards int) (string, error) {
	if content == "" {
		return "", ErrEmptyContent
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, PromptData{Content: content, NumCards: numCards}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
