package bible

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lumieres/internal/llm"
)

// Fallback produces a passage when the corpus cannot.
type Fallback interface {
	Passage(ctx context.Context, ref string) (Passage, error)
}

const passageSystemPrompt = `Tu es une source fidèle du texte biblique Louis Segond (1910).
Tu ne commentes pas, tu ne paraphrases pas, tu ne modernises pas la langue.`

const passageUserPrompt = `Tâche : Fournir le texte biblique complet pour la référence : "%s".
Version : Louis Segond (1910).

IMPORTANT : Réponds UNIQUEMENT avec un JSON valide. Pas de texte avant ni après.

Format JSON attendu :
{
  "title": "%s",
  "content": [
    { "type": "heading", "text": "Nom Livre Chapitre X" },
    { "type": "verse", "num": "1", "text": "Texte..." }
  ]
}`

// GeneratedFallback asks a chat completion service for the passage text.
type GeneratedFallback struct {
	client llm.LLMClient
}

// NewGeneratedFallback creates a Fallback backed by client.
func NewGeneratedFallback(client llm.LLMClient) *GeneratedFallback {
	return &GeneratedFallback{client: client}
}

func (f *GeneratedFallback) Passage(ctx context.Context, ref string) (Passage, error) {
	resp, err := f.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPassage,
		SystemPrompt: passageSystemPrompt,
		UserPrompt:   fmt.Sprintf(passageUserPrompt, ref, ref),
	})
	if err != nil {
		return Passage{}, err
	}

	g, err := llm.ExtractJSON[generatedPassage](resp.Text, validateGenerated)
	if err != nil {
		return Passage{}, err
	}

	p := Passage{Title: g.Title, Source: SourceAPI}
	if strings.TrimSpace(p.Title) == "" {
		p.Title = ref
	}
	for _, item := range g.Content {
		p.Content = append(p.Content, ContentItem{Type: item.Type, Text: item.Text, Num: numLabel(item.Num)})
	}
	return p, nil
}

// generatedPassage mirrors Passage but accepts verse numbers written as
// JSON numbers as well as strings.
type generatedPassage struct {
	Title   string `json:"title"`
	Content []struct {
		Type ItemType `json:"type"`
		Text string   `json:"text"`
		Num  any      `json:"num"`
	} `json:"content"`
}

func numLabel(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprint(n)
	}
}

func validateGenerated(p generatedPassage) error {
	if len(p.Content) == 0 {
		return errors.New("content is empty")
	}
	for i, item := range p.Content {
		switch item.Type {
		case ItemHeading, ItemVerse:
		default:
			return fmt.Errorf("content[%d]: unknown type %q", i, item.Type)
		}
		if strings.TrimSpace(item.Text) == "" {
			return fmt.Errorf("content[%d]: empty text", i)
		}
	}
	return nil
}

// NotConfiguredPassage is shown when the corpus failed and no generation
// service is configured.
func NotConfiguredPassage() Passage {
	return Passage{
		Title: "Erreur",
		Content: []ContentItem{
			heading("Erreur de chargement"),
			verse("!", "Le fichier Bible n'a pas pu être téléchargé et l'API n'est pas configurée."),
		},
	}
}

// UnavailablePassage is shown when the generation service failed for ref.
func UnavailablePassage(ref string) Passage {
	return Passage{
		Title: ref,
		Content: []ContentItem{
			heading("Service indisponible."),
			verse("Info", "Impossible de récupérer le texte actuellement."),
		},
	}
}
