package images

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

const promptTemplate = "Professional food photography of %s, overhead shot on a rustic wooden table, " +
	"natural window light, shallow depth of field, appetizing, no text or watermarks"

// PromptStylist turns an item name and description into a photography prompt
// for the image provider. With an LLM configured it asks the model to write
// the prompt; otherwise a fixed template is used.
type PromptStylist struct {
	llm llms.Model
}

// NewPromptStylist creates a stylist. llm may be nil.
func NewPromptStylist(llm llms.Model) *PromptStylist {
	return &PromptStylist{llm: llm}
}

// Style returns the image-generation prompt for an item.
func (p *PromptStylist) Style(ctx context.Context, name, description string) string {
	subject := name
	if description != "" {
		subject = fmt.Sprintf("%s (%s)", name, description)
	}
	fallback := fmt.Sprintf(promptTemplate, subject)
	if p.llm == nil {
		return fallback
	}

	instruction := fmt.Sprintf(
		"Write a single-sentence image generation prompt for a professional photo of the restaurant dish %q. "+
			"Describe plating, lighting and camera angle. Do not include text or watermarks in the image. "+
			"Reply with the prompt only.", subject)
	out, err := llms.GenerateFromSinglePrompt(ctx, p.llm, instruction)
	if err != nil || strings.TrimSpace(out) == "" {
		return fallback
	}
	return strings.TrimSpace(out)
}
