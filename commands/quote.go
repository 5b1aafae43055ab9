// Package commands holds the command line extensions of the quotation app.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quotecalc/services"
)

// QuoteOptions are the collaborators of the quote command.
type QuoteOptions struct {
	Rules         services.Rules
	CompanyName   string
	DefaultFormat services.Format
	Logger        *zap.Logger
	// LoadCatalog returns the catalog to price against. The reference catalog
	// is used when it is nil, fails or returns an incomplete catalog.
	LoadCatalog func() (*services.Catalog, error)
	Now         func() time.Time
}

type quoteFlags struct {
	offering string
	mode     string
	sessions int
	zone     string
	rate     float64
	client   string
	format   string
	out      string
}

// NewQuoteCommand returns the "quote" command, which prices a selection from
// flags and optionally writes the quotation document.
func NewQuoteCommand(opts QuoteOptions) *cobra.Command {
	flags := &quoteFlags{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a training offer and optionally export the quotation",
		Example: "  quotecalc quote --offering m365 --mode on-site --sessions 2 --zone distant --rate 1000\n" +
			"  quotecalc quote --offering ai-half --mode remote --sessions 3 --client ACME --format pdf --out ./devis",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd.Context(), cmd.OutOrStdout(), opts, flags)
		},
	}

	cmd.Flags().StringVar(&flags.offering, "offering", "", "offering code (cyber-2h, cyber-half, m365, ai-half, ai-full)")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "delivery mode (on-site or remote)")
	cmd.Flags().IntVar(&flags.sessions, "sessions", opts.Rules.DefaultSessions, "number of sessions")
	cmd.Flags().StringVar(&flags.zone, "zone", "", "travel zone for on-site delivery (local, regional, distant)")
	cmd.Flags().Float64Var(&flags.rate, "rate", opts.Rules.DefaultDailyRate, "daily rate excluding tax")
	cmd.Flags().StringVar(&flags.client, "client", "", "client name; when set the quotation document is written")
	cmd.Flags().StringVar(&flags.format, "format", string(opts.DefaultFormat), "export format (docx, pdf, xlsx)")
	cmd.Flags().StringVar(&flags.out, "out", ".", "output directory of the exported document")

	return cmd
}

func runQuote(ctx context.Context, w io.Writer, opts QuoteOptions, flags *quoteFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog := services.DefaultCatalog()
	if opts.LoadCatalog != nil {
		loaded, err := opts.LoadCatalog()
		if err != nil {
			logger.Warn("quote: using reference catalog", zap.Error(err))
		} else if loaded.Complete() {
			catalog = loaded
		} else {
			logger.Warn("quote: stored catalog incomplete, using reference catalog")
		}
	}
	engine := services.NewEngine(catalog, opts.Rules)

	sel := services.Selection{
		OfferingID: services.OfferingID(flags.offering),
		Mode:       services.ParseDeliveryMode(flags.mode),
		Sessions:   flags.sessions,
		ZoneID:     services.ZoneID(flags.zone),
		DailyRate:  flags.rate,
	}
	if sel.Sessions < 0 {
		sel.Sessions = 0
	}

	warn := color.New(color.FgYellow)
	q, missing := engine.Calculate(sel)
	if len(missing) > 0 {
		for _, m := range missing {
			warn.Fprintln(w, m.Message())
		}
		return errors.New("selection is incomplete")
	}

	printQuotation(w, q)
	if q.BelowRateFloor {
		warn.Fprintf(w, "Le TJM minimum est de %s HT.\n", services.FormatEURCompact(q.MinDailyRate))
	}

	if flags.client == "" {
		return nil
	}

	format, err := services.ParseFormat(flags.format)
	if err != nil {
		return err
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	exporter := services.NewExporter(logger)
	res, err := exporter.Export(ctx, services.ExportRequest{
		ClientName:    flags.client,
		CompanyName:   opts.CompanyName,
		DepartureCity: opts.Rules.DepartureCity,
		Quotation:     q,
		Format:        format,
		Date:          now(),
	})
	if err != nil {
		return fmt.Errorf("export quotation: %w", err)
	}

	if err := os.MkdirAll(flags.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(flags.out, res.Filename)
	if err := os.WriteFile(path, res.Body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	color.New(color.FgGreen).Fprintf(w, "Devis enregistré : %s\n", path)
	logger.Info("quote: exported", zap.String("export_id", res.ID), zap.String("path", path))
	return nil
}

func printQuotation(w io.Writer, q services.PricedQuotation) {
	bold := color.New(color.Bold)

	fmt.Fprintf(w, "Formation : %s\n", q.Offering.DisplayName())
	fmt.Fprintf(w, "Mode : %s\n", q.Mode.Label())
	if q.Zone != nil {
		fmt.Fprintf(w, "Zone de déplacement : %s\n", q.Zone.Name)
	}
	fmt.Fprintf(w, "Nombre de sessions : %d\n", q.Sessions)
	fmt.Fprintf(w, "Nombre de jours facturés : %s\n", services.FormatDays(q.TotalDays))
	fmt.Fprintf(w, "TJM : %s HT\n", services.FormatEUR(q.DailyRate))
	fmt.Fprintf(w, "Frais de déplacement : %s HT\n", services.FormatEUR(q.TravelCost))
	if q.Travel.Rule != services.TravelNone {
		fmt.Fprintf(w, "  %s\n", services.TravelDerivation(q.Travel, services.FormatEURCompact))
	}
	fmt.Fprintf(w, "Total HT : %s HT\n", services.FormatEUR(q.TotalExcludingTax))
	fmt.Fprintf(w, "TVA (%s) : %s\n", services.FormatPercent(q.TaxRate), services.FormatEUR(q.Tax))
	bold.Fprintf(w, "Total TTC : %s TTC\n", services.FormatEUR(q.TotalIncludingTax))
}
