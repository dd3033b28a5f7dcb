package session

import (
	"fmt"
	"strings"

	"github.com/phrazzld/flashcard-generator/internal/domain"
)

// Export file metadata.
const (
	ExportFilename    = "flashcards.txt"
	ExportContentType = "text/plain; charset=utf-8"
)

// Saver delivers an exported file to the user.
type Saver interface {
	Save(filename, contentType string, data []byte) error
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(filename, contentType string, data []byte) error

// Save calls f.
func (f SaverFunc) Save(filename, contentType string, data []byte) error {
	return f(filename, contentType, data)
}

// Export renders cards as plain text, one block per card in order:
//
//	Card 1:
//	Q: <question>
//	A: <answer>
//
// Blocks are separated by a blank line.
func Export(cards domain.CardSet) []byte {
	blocks := make([]string, len(cards))
	for i, c := range cards {
		blocks[i] = fmt.Sprintf("Card %d:\nQ: %s\nA: %s\n", i+1, c.Question, c.Answer)
	}
	return []byte(strings.Join(blocks, "\n"))
}

// SaveExport renders cards and hands the result to saver.
func SaveExport(cards domain.CardSet, saver Saver) error {
	return saver.Save(ExportFilename, ExportContentType, Export(cards))
}
