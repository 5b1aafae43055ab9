package services

import (
	"bytes"
	"testing"
	"time"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader
// and zip.NewReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

var testDate = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

// mustQuote prices a selection with the default catalog and rules.
func mustQuote(t *testing.T, sel Selection) PricedQuotation {
	t.Helper()

	q, missing := NewEngine(DefaultCatalog(), DefaultRules()).Calculate(sel)
	if len(missing) > 0 {
		t.Fatalf("selection %+v is incomplete: %v", sel, missing)
	}
	return q
}

// onSiteDistantQuote is the M365 / on-site / 2 sessions / distant / 1000 scenario.
func onSiteDistantQuote(t *testing.T) PricedQuotation {
	t.Helper()
	return mustQuote(t, Selection{
		OfferingID: OfferingM365,
		Mode:       ModeOnSite,
		Sessions:   2,
		ZoneID:     ZoneDistant,
		DailyRate:  1000,
	})
}

// remoteQuote is the cyber-half / remote / 4 sessions / 1200 scenario.
func remoteQuote(t *testing.T) PricedQuotation {
	t.Helper()
	return mustQuote(t, Selection{
		OfferingID: OfferingCyberHalf,
		Mode:       ModeRemote,
		Sessions:   4,
		DailyRate:  1200,
	})
}

func testDocument(t *testing.T, q PricedQuotation) QuoteDocument {
	t.Helper()

	doc, err := BuildQuoteDocument(ExportRequest{
		ClientName: "ACME",
		Quotation:  q,
		Date:       testDate,
	}, FormatEUR)
	if err != nil {
		t.Fatalf("BuildQuoteDocument() error = %v", err)
	}
	return doc
}
