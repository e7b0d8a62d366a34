package services

import (
	"regexp"
	"strings"

	"github.com/mlanzi/spese-backend/types"
	"github.com/shopspring/decimal"
)

// Receipt field patterns, in priority order. The first pattern that matches
// anywhere in the text wins; later matches are ignored even when a later
// occurrence would be the true total. That is a known heuristic limitation of
// the extraction, kept on purpose.
var (
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)TOTALE[:\s]+€?\s*(\d+[,.]\d{2})`),
		regexp.MustCompile(`(?i)TOTAL[E]?[:\s]+€?\s*(\d+[,.]\d{2})`),
		regexp.MustCompile(`(?i)EUR[:\s]+(\d+[,.]\d{2})`),
		regexp.MustCompile(`(?i)€\s*(\d+[,.]\d{2})`),
	}

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{2}[/\-.]\d{2}[/\-.]\d{4})`),
		regexp.MustCompile(`(\d{2}[/\-.]\d{2}[/\-.]\d{2})`),
	}

	taxIDPattern = regexp.MustCompile(`(?i)P\.?\s*IVA[:\s]+(\d{11})`)
)

// Extractor pulls structured fields out of recognized receipt text.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract scans the text for a monetary total, a date and a tax identifier.
// Fields that no pattern matches are absent from the result; extraction
// itself never fails.
func (e *Extractor) Extract(text string) types.ReceiptData {
	data := types.ReceiptData{FullText: text}

	for _, p := range amountPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			raw := strings.ReplaceAll(m[1], ",", ".")
			if amount, err := decimal.NewFromString(raw); err == nil {
				data.Amount = &amount
			}
			break
		}
	}

	for _, p := range datePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			data.Date = m[1]
			break
		}
	}

	if m := taxIDPattern.FindStringSubmatch(text); m != nil {
		data.TaxID = m[1]
	}

	return data
}
