package images

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when the image pipeline is missing its
// provider or CDN credentials.
var ErrNotConfigured = errors.New("image generation is not configured")

// Service runs the full pipeline: style a prompt, render the image, upload
// it, and return the production URL.
type Service struct {
	stylist   *PromptStylist
	generator *Generator
	uploader  *Uploader
}

// NewService creates the pipeline. generator or uploader may be nil when
// unconfigured; GenerateForItem then fails with ErrNotConfigured.
func NewService(stylist *PromptStylist, generator *Generator, uploader *Uploader) *Service {
	return &Service{stylist: stylist, generator: generator, uploader: uploader}
}

// Configured reports whether image generation can run.
func (s *Service) Configured() bool {
	return s.generator != nil && s.uploader != nil
}

// GenerateForItem renders and uploads an image for the item and returns its
// externally hosted URL. prompt overrides the styled prompt when non-empty.
func (s *Service) GenerateForItem(ctx context.Context, itemID, name, description, prompt, size string) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}
	if prompt == "" {
		prompt = s.stylist.Style(ctx, name, description)
	}

	image, err := s.generator.Generate(ctx, prompt, size)
	if err != nil {
		return "", fmt.Errorf("failed to generate image for %s: %w", itemID, err)
	}
	url, err := s.uploader.Upload(ctx, itemID, image)
	if err != nil {
		return "", fmt.Errorf("failed to upload image for %s: %w", itemID, err)
	}
	return url, nil
}
