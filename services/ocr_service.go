package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mlanzi/spese-backend/config"
	"github.com/mlanzi/spese-backend/logger"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"
)

// OCRService extracts text from receipt images through the Google Vision
// API. A nil *OCRService is valid: IsEnabled reports false and uploads
// degrade to manual entry.
type OCRService struct {
	svc *vision.Service
	log *zap.SugaredLogger
}

// NewOCRService builds the Vision client from the configured credentials.
// A credentials file takes priority over inline JSON; with neither set the
// returned service is nil and OCR is disabled.
func NewOCRService(ctx context.Context, cfg config.OCRConfig) (*OCRService, error) {
	log := logger.GetLogger()

	var opts []option.ClientOption
	switch {
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	default:
		log.Infow("OCR disabled: no Google Vision credentials configured")
		return nil, nil
	}

	svc, err := vision.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Vision client: %w", err)
	}
	return &OCRService{svc: svc, log: log}, nil
}

// IsEnabled reports whether OCR credentials were configured.
func (s *OCRService) IsEnabled() bool {
	return s != nil && s.svc != nil
}

// DetectText runs TEXT_DETECTION over the image bytes and returns the full
// recognized text. An image with no recognizable text returns an empty
// string, not an error.
func (s *OCRService) DetectText(ctx context.Context, image []byte) (string, error) {
	if !s.IsEnabled() {
		return "", fmt.Errorf("OCR is not configured")
	}

	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{{
			Image:    &vision.Image{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []*vision.Feature{{Type: "TEXT_DETECTION"}},
		}},
	}

	resp, err := s.svc.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("vision annotate failed: %w", err)
	}
	if len(resp.Responses) == 0 {
		return "", fmt.Errorf("vision returned no responses")
	}

	r := resp.Responses[0]
	if r.Error != nil {
		return "", fmt.Errorf("vision annotation error: %s", r.Error.Message)
	}
	if len(r.TextAnnotations) == 0 {
		return "", nil
	}
	return r.TextAnnotations[0].Description, nil
}
