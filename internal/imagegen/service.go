package imagegen

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"sketchstudio/internal/domain"
)

// Service runs the generation workflow: validate the upload, normalize it,
// compose the prompt and make one blocking edit call. It never touches
// session state; callers append the returned blobs themselves, so a failed
// call cannot leave partial results behind.
type Service struct {
	editor Editor
	size   string
	logger zerolog.Logger
}

// NewService wires the workflow to an image provider client.
func NewService(editor Editor, size string, logger zerolog.Logger) *Service {
	if size == "" {
		size = "1024x1024"
	}
	return &Service{editor: editor, size: size, logger: logger}
}

// Submit performs one generation round trip and returns the produced blobs in
// order. Sentinel errors cover the local failure modes; anything that goes
// wrong at or after the provider call comes back as a *domain.GenerationError.
func (s *Service) Submit(ctx context.Context, imageBytes []byte, freeText string) ([][]byte, error) {
	if len(imageBytes) == 0 {
		return nil, domain.ErrMissingImage
	}

	canonical, err := NormalizePNG(imageBytes)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(BasePrompt, freeText)

	blobs, err := s.editor.Edit(ctx, EditRequest{
		Prompt:   prompt,
		ImagePNG: canonical,
		Filename: "image.png",
		Size:     s.size,
		N:        1,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("image edit call failed")
		var genErr *domain.GenerationError
		if errors.As(err, &genErr) {
			return nil, err
		}
		return nil, &domain.GenerationError{Err: err}
	}
	if len(blobs) == 0 {
		return nil, &domain.GenerationError{Message: "provider returned no images"}
	}

	s.logger.Debug().Int("images", len(blobs)).Msg("image edit call succeeded")
	return blobs, nil
}
