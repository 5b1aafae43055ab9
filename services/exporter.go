package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

var (
	ErrExportInFlight    = errors.New("an export is already in progress")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrRenderFailed      = errors.New("document serialization failed")
)

// Format is an export file format.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported export formats, the default first.
var Formats = []Format{FormatDOCX, FormatPDF, FormatXLSX}

// ParseFormat maps a format name to a Format. An empty name selects DOCX.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if s == "" {
		return FormatDOCX, nil
	}
	for _, f := range Formats {
		if s == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// Renderer serializes a quotation document to file bytes.
type Renderer func(QuoteDocument) ([]byte, error)

// ExportResult is the downloadable artifact of a successful export.
type ExportResult struct {
	ID          string
	Filename    string
	ContentType string
	Body        []byte
}

// Exporter turns export requests into files. At most one export runs at a
// time; a second request while one is pending fails with ErrExportInFlight.
type Exporter struct {
	sem       *semaphore.Weighted
	renderers map[Format]Renderer
	money     MoneyFormatter
	logger    *zap.Logger
}

// ExporterOption customizes an Exporter.
type ExporterOption func(*Exporter)

// WithRenderer replaces the renderer used for a format.
func WithRenderer(format Format, r Renderer) ExporterOption {
	return func(x *Exporter) { x.renderers[format] = r }
}

// WithMoneyFormatter replaces the currency display adapter.
func WithMoneyFormatter(money MoneyFormatter) ExporterOption {
	return func(x *Exporter) { x.money = money }
}

func NewExporter(logger *zap.Logger, opts ...ExporterOption) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	x := &Exporter{
		sem: semaphore.NewWeighted(1),
		renderers: map[Format]Renderer{
			FormatDOCX: GenerateDOCX,
			FormatPDF:  GeneratePDF,
			FormatXLSX: GenerateExcel,
		},
		money:  FormatEUR,
		logger: logger,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Export formats and serializes the request. On failure no bytes are returned.
// The context only carries request-scoped values; serialization is not
// cancellable once started.
func (x *Exporter) Export(ctx context.Context, req ExportRequest) (ExportResult, error) {
	if !x.sem.TryAcquire(1) {
		return ExportResult{}, ErrExportInFlight
	}
	defer x.sem.Release(1)

	format := req.Format
	if format == "" {
		format = FormatDOCX
	}
	render, ok := x.renderers[format]
	if !ok {
		return ExportResult{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	doc, err := BuildQuoteDocument(req, x.money)
	if err != nil {
		return ExportResult{}, err
	}

	id := uuid.NewString()
	log := x.logger.With(
		zap.String("export_id", id),
		zap.String("format", string(format)),
		zap.String("offering", string(req.Quotation.Offering.ID)),
	)
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		log = log.With(zap.String("request_id", reqID))
	}

	start := time.Now()
	body, err := render(doc)
	if err != nil {
		log.Error("quote export failed", zap.Error(err))
		return ExportResult{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	log.Info("quote exported",
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return ExportResult{
		ID:          id,
		Filename:    doc.Filename + "." + string(format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

type contextKey string

// RequestIDKey carries an optional request id for export log lines.
const RequestIDKey contextKey = "requestID"
