package service

import (
	"context"
	"fmt"
	"image"

	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"
)

// TextFragment is one recognized region of a receipt image. The pipeline
// keeps only the text; region and confidence are available to callers that
// want to filter low-quality reads.
type TextFragment struct {
	Box        image.Rectangle
	Text       string
	Confidence float64
}

type TextRecognizer interface {
	Recognize(ctx context.Context, img []byte) ([]TextFragment, error)
}

// OCRService recognizes receipt text with tesseract. Initialized once at
// startup; a tesseract client is created per call because the underlying
// API handle is not safe for reuse across requests.
type OCRService struct {
	languages []string
	logger    *zap.Logger
}

func NewOCRService(languages []string, logger *zap.Logger) *OCRService {
	return &OCRService{
		languages: languages,
		logger:    logger,
	}
}

func (s *OCRService) Recognize(ctx context.Context, img []byte) ([]TextFragment, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(s.languages...); err != nil {
		return nil, fmt.Errorf("failed to set OCR languages: %w", err)
	}
	if err := client.SetImageFromBytes(img); err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("failed to recognize text: %w", err)
	}

	fragments := make([]TextFragment, 0, len(boxes))
	for _, box := range boxes {
		fragments = append(fragments, TextFragment{
			Box:        box.Box,
			Text:       box.Word,
			Confidence: box.Confidence,
		})
	}

	s.logger.Info("OCR recognition completed",
		zap.Int("fragments", len(fragments)),
	)

	return fragments, nil
}
