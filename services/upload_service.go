package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/mlanzi/spese-backend/config"
	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/logger"
	"github.com/mlanzi/spese-backend/types"
	"go.uber.org/zap"
)

const manualEntryWarning = "Estrazione automatica non disponibile, inserire i dati manualmente"

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// UploadService runs the receipt ingestion pipeline: validate, normalize the
// image, store it, then best-effort OCR. A failing OCR step never fails the
// upload; the result carries a warning and the client falls back to manual
// entry.
type UploadService struct {
	storage   FileStorage
	ocr       *OCRService
	extractor *Extractor
	cfg       config.UploadConfig
	log       *zap.SugaredLogger
	now       func() time.Time
}

func NewUploadService(storage FileStorage, ocr *OCRService, cfg config.UploadConfig) *UploadService {
	return &UploadService{
		storage:   storage,
		ocr:       ocr,
		extractor: NewExtractor(),
		cfg:       cfg,
		log:       logger.GetLogger(),
		now:       time.Now,
	}
}

// Process handles one uploaded receipt. filename is the client-supplied name,
// used only to derive the storage key; data is the raw upload body.
func (s *UploadService) Process(ctx context.Context, filename string, data []byte) (*types.UploadResult, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, apperrors.ValidationFailed("missing file", "the uploaded file has no filename")
	}
	if len(data) == 0 {
		return nil, apperrors.ValidationFailed("empty file", "the uploaded file is empty")
	}
	if int64(len(data)) > s.cfg.MaxSizeBytes {
		return nil, apperrors.ValidationFailed("file too large", "the uploaded file exceeds the size limit")
	}

	// Sniff the real content type; the client-supplied one is not trusted.
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, apperrors.ValidationFailed("unsupported file type", "only image uploads are accepted")
	}

	normalized, err := s.normalizeImage(data)
	if err != nil {
		return nil, apperrors.ValidationFailed("unreadable image", err.Error())
	}

	key := s.storageKey(filename)
	if err := s.storage.Save(ctx, key, bytes.NewReader(normalized), int64(len(normalized))); err != nil {
		return nil, apperrors.Upstream("storage", err)
	}

	result := &types.UploadResult{
		ImageURL: s.storage.PublicURL(key),
		OCRData:  s.recognize(ctx, normalized),
	}
	return result, nil
}

// normalizeImage decodes the upload, shrinks it to fit the configured maximum
// dimension, flattens any alpha channel onto white, and re-encodes as JPEG.
// Vision OCR quality does not benefit from larger inputs and the stored copy
// stays small.
func (s *UploadService) normalizeImage(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() > s.cfg.MaxDimensionPx || bounds.Dy() > s.cfg.MaxDimensionPx {
		img = imaging.Fit(img, s.cfg.MaxDimensionPx, s.cfg.MaxDimensionPx, imaging.Lanczos)
	}

	// JPEG has no alpha; PNG screenshots with transparency would otherwise
	// flatten onto black.
	flattened := image.NewRGBA(img.Bounds())
	draw.Draw(flattened, flattened.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flattened, flattened.Bounds(), img, img.Bounds().Min, draw.Over)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flattened, imaging.JPEG, imaging.JPEGQuality(s.cfg.JPEGQuality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// storageKey derives the stored object key from the original filename:
// ricevute/<timestamp>_<sanitized-stem>.jpg. The extension is always .jpg
// because the image is re-encoded.
func (s *UploadService) storageKey(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	stem = unsafeFilenameChars.ReplaceAllString(stem, "_")
	stem = strings.Trim(stem, "._-")
	if stem == "" {
		stem = "ricevuta"
	}
	return "ricevute/" + s.now().Format("20060102_150405") + "_" + stem + ".jpg"
}

// recognize runs OCR and field extraction. Any failure, including OCR being
// unconfigured, degrades to an empty result with a manual-entry warning.
func (s *UploadService) recognize(ctx context.Context, image []byte) types.ReceiptData {
	if !s.ocr.IsEnabled() {
		return types.ReceiptData{Warning: manualEntryWarning}
	}

	text, err := s.ocr.DetectText(ctx, image)
	if err != nil {
		s.log.Warnw("OCR failed, falling back to manual entry", "error", err)
		return types.ReceiptData{Warning: manualEntryWarning}
	}
	if strings.TrimSpace(text) == "" {
		return types.ReceiptData{Warning: manualEntryWarning}
	}
	return s.extractor.Extract(text)
}
