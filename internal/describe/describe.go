// ABOUTME: Data dictionary for generated datasets, static or narrated by OpenAI.
// ABOUTME: Falls back to static descriptions whenever the model is unavailable or fails.

package describe

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/2389/bdas/internal/category"
)

// Field documents one column.
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Rule        string `json:"rule"`
	Description string `json:"description"`
}

// Dictionary documents the dataset generated for one project.
type Dictionary struct {
	Project  string  `json:"project"`
	Category string  `json:"category"`
	Rows     int     `json:"rows"`
	Fields   []Field `json:"fields"`
	Source   string  `json:"source"`
}

// Dictionary sources
const (
	SourceStatic = "static"
	SourceAI     = "openai"
)

// Generator builds dictionaries, using OpenAI for descriptions when configured.
type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator returns a generator. An empty apiKey disables OpenAI.
func NewGenerator(apiKey, model string) *Generator {
	g := &Generator{model: model}
	if g.model == "" {
		g.model = "gpt-5-mini"
	}

	if apiKey != "" {
		g.client = openai.NewClient(apiKey)
		log.Printf("OpenAI API key found, narrating data dictionaries with model: %s", g.model)
	}
	return g
}

// UsesAI reports whether descriptions come from OpenAI.
func (g *Generator) UsesAI() bool {
	return g.client != nil
}

// Static builds the dictionary for name without any network calls.
func Static(name string) *Dictionary {
	rule := category.Match(name)
	d := &Dictionary{
		Project:  name,
		Category: rule.Category,
		Rows:     rule.Shape.Rows,
		Source:   SourceStatic,
	}
	for _, col := range rule.Shape.Columns {
		d.Fields = append(d.Fields, Field{
			Name:        col.Name(),
			Type:        col.Kind().String(),
			Rule:        col.Describe(),
			Description: staticDescription(col.Name()),
		})
	}
	return d
}

// Describe returns the dictionary for name. Model errors are logged and the
// static dictionary is returned instead.
func (g *Generator) Describe(ctx context.Context, name string) *Dictionary {
	d := Static(name)
	if !g.UsesAI() {
		return d
	}

	descriptions, err := g.narrate(ctx, d)
	if err != nil {
		log.Printf("AI description failed for %s, using static descriptions: %v", name, err)
		return d
	}

	for i, f := range d.Fields {
		if text := strings.TrimSpace(descriptions[f.Name]); text != "" {
			d.Fields[i].Description = text
		}
	}
	d.Source = SourceAI
	return d
}

func (g *Generator) narrate(ctx context.Context, d *Dictionary) (map[string]string, error) {
	var cols strings.Builder
	for _, f := range d.Fields {
		fmt.Fprintf(&cols, "- %s (%s): %s\n", f.Name, f.Type, f.Rule)
	}

	prompt := fmt.Sprintf(`A placeholder dataset named %q belongs to the %s category and has %d rows with these columns:
%s
Write a one-sentence business description for each column as an analyst would read it.
Return a JSON object mapping each column name to its description.`, d.Project, d.Category, d.Rows, cols.String())

	return callOpenAI[map[string]string](ctx, g.client, g.model, prompt)
}

func callOpenAI[T any](ctx context.Context, client *openai.Client, model, prompt string) (T, error) {
	var result T

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You document datasets. Always respond with valid JSON only, no markdown or explanation.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return result, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return result, fmt.Errorf("no response from OpenAI")
	}

	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return result, nil
}
