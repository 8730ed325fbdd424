package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nurpe/vendor-onboarding/internal/client"
	"github.com/nurpe/vendor-onboarding/internal/config"
	"github.com/nurpe/vendor-onboarding/internal/confirmation"
	"github.com/nurpe/vendor-onboarding/internal/excel"
	"github.com/nurpe/vendor-onboarding/internal/form"
	"github.com/nurpe/vendor-onboarding/internal/model"
	"github.com/nurpe/vendor-onboarding/internal/pdf"
)

var errSubmissionFailed = errors.New("submission failed")

type submitOptions struct {
	serverURL   string
	timeout     time.Duration
	sets        []string
	document    string
	receiptHTML string
	receiptPDF  string
	receiptXLSX string
	wait        bool
}

func newSubmitCommand(cfg *config.ClientConfig, log zerolog.Logger) *cobra.Command {
	opts := submitOptions{
		serverURL: cfg.ServerURL,
		timeout:   cfg.Timeout,
		wait:      true,
	}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate and submit one onboarding form",
		Example: `  onboarding-cli submit \
    --set vendor_country=India --set service_offering=Seeds \
    --set vendor_name=AgroCo --set vendor_email=ops@agroco.test \
    --set vendor_contact_number="+91 98765 43210" --set u_tax_id=GSTIN123 \
    --set seed_type=Hybrid --set seed_quality=High --set seed_quantity=50 \
    --document gst.pdf --receipt-pdf receipt.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSubmit(cmd.Context(), cmd.OutOrStdout(), opts, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.serverURL, "server", opts.serverURL, "onboarding backend base URL")
	flags.DurationVar(&opts.timeout, "timeout", opts.timeout, "how long to wait for the backend")
	flags.StringArrayVar(&opts.sets, "set", nil, "form field as key=value, repeatable")
	flags.StringVar(&opts.document, "document", "", "compliance document to attach")
	flags.StringVar(&opts.receiptHTML, "receipt-html", "", "write the confirmation page as HTML")
	flags.StringVar(&opts.receiptPDF, "receipt-pdf", "", "write the confirmation as a PDF receipt")
	flags.StringVar(&opts.receiptXLSX, "receipt-xlsx", "", "write the confirmation as an XLSX receipt")
	flags.BoolVar(&opts.wait, "wait", opts.wait, "keep the notice up for its display delay")
	return cmd
}

func runSubmit(ctx context.Context, out io.Writer, opts submitOptions, log zerolog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	actions, err := parseSets(opts.sets)
	if err != nil {
		return err
	}
	state := form.Apply(form.New(), actions...)

	doc, err := readDocument(opts.document)
	if err != nil {
		return err
	}

	if err := form.NewValidator(time.Now).Validate(state, doc); err != nil {
		var fieldErrs form.Errors
		if errors.As(err, &fieldErrs) {
			fmt.Fprintln(out, "The form has problems:")
			for _, line := range strings.Split(fieldErrs.Error(), "; ") {
				fmt.Fprintln(out, "  "+line)
			}
		}
		return fmt.Errorf("invalid form: %w", err)
	}

	outcome := client.New(opts.serverURL, opts.timeout, log).Submit(ctx, state, doc)
	fmt.Fprintln(out, outcome.Notice.Message)
	if opts.wait {
		if err := sleep(ctx, outcome.Notice.Dismiss); err != nil {
			return err
		}
	}

	if outcome.Navigation == nil {
		return errSubmissionFailed
	}

	page := confirmation.Build(outcome.Navigation)
	fmt.Fprintln(out)
	writeText(out, page)
	return writeReceipts(ctx, page, opts)
}

// parseSets turns key=value pairs into actions. Country and offering go
// first so that the derived currency and the cleared detail fields settle
// before the remaining fields are applied. A repeated selector keeps its
// last value.
func parseSets(sets []string) ([]form.SetField, error) {
	var country, offering *form.SetField
	var rest []form.SetField
	for _, raw := range sets {
		key, value, ok := strings.Cut(raw, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, expected key=value", raw)
		}
		action := form.SetField{Name: key, Value: value}
		switch key {
		case model.FieldVendorCountry:
			country = &action
		case model.FieldServiceOffering:
			offering = &action
		default:
			rest = append(rest, action)
		}
	}

	actions := make([]form.SetField, 0, len(rest)+2)
	if country != nil {
		actions = append(actions, *country)
	}
	if offering != nil {
		actions = append(actions, *offering)
	}
	return append(actions, rest...), nil
}

func readDocument(path string) (*model.Document, error) {
	if path == "" {
		return nil, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return &model.Document{Name: filepath.Base(path), Content: content}, nil
}

func writeText(out io.Writer, page confirmation.Page) {
	fmt.Fprintln(out, page.Title)
	fmt.Fprintf(out, "  %-22s %s\n", "Request Number:", page.RequestNumber)
	for _, line := range page.Common {
		fmt.Fprintf(out, "  %-22s %s\n", line.Label+":", line.Value)
	}
	for _, line := range page.Details {
		fmt.Fprintf(out, "  %-22s %s\n", line.Label+":", line.Value)
	}
}

func writeReceipts(ctx context.Context, page confirmation.Page, opts submitOptions) error {
	if opts.receiptHTML != "" {
		var buf bytes.Buffer
		if err := confirmation.HTML(page).Render(ctx, &buf); err != nil {
			return fmt.Errorf("render html receipt: %w", err)
		}
		if err := os.WriteFile(opts.receiptHTML, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write html receipt: %w", err)
		}
	}
	if opts.receiptPDF != "" {
		data, err := pdf.NewGenerator().Generate(page)
		if err != nil {
			return fmt.Errorf("render pdf receipt: %w", err)
		}
		if err := os.WriteFile(opts.receiptPDF, data, 0o644); err != nil {
			return fmt.Errorf("write pdf receipt: %w", err)
		}
	}
	if opts.receiptXLSX != "" {
		data, err := excel.NewGenerator().Generate(page)
		if err != nil {
			return fmt.Errorf("render xlsx receipt: %w", err)
		}
		if err := os.WriteFile(opts.receiptXLSX, data, 0o644); err != nil {
			return fmt.Errorf("write xlsx receipt: %w", err)
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
