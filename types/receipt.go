package types

import "github.com/shopspring/decimal"

// ReceiptData holds the fields extracted from the recognized text of a
// receipt image. A field the extractor could not find is simply absent;
// extraction never fails.
type ReceiptData struct {
	FullText string           `json:"full_text,omitempty"`
	Amount   *decimal.Decimal `json:"importo,omitempty"`
	Date     string           `json:"data,omitempty"`
	TaxID    string           `json:"partita_iva,omitempty"`
	Warning  string           `json:"warning,omitempty"`
}

// UploadResult is the response body of POST /api/upload.
type UploadResult struct {
	ImageURL string      `json:"image_url"`
	OCRData  ReceiptData `json:"ocr_data"`
}
