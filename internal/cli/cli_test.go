package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nurpe/vendor-onboarding/internal/config"
	"github.com/nurpe/vendor-onboarding/internal/form"
	"github.com/nurpe/vendor-onboarding/internal/model"
)

func execute(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Helper()
	cfg := &config.ClientConfig{Environment: "test", ServerURL: serverURL, Timeout: time.Second}
	root := NewRootCommand(cfg, zerolog.Nop())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func seedsArgs() []string {
	return []string{
		"submit", "--wait=false",
		"--set", "vendor_name=AgroCo",
		"--set", "seed_type=Hybrid",
		"--set", "vendor_email=ops@agroco.test",
		"--set", "vendor_contact_number=+91 98765 43210",
		"--set", "u_tax_id=GSTIN123",
		"--set", "seed_quality=High",
		"--set", "seed_quantity=50",
		"--set", "service_offering=Seeds",
		"--set", "vendor_country=India",
	}
}

func TestSubmitWritesReceipts(t *testing.T) {
	var posted map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		posted = r.MultipartForm.Value
		_, _ = io.WriteString(w, `{"success":true,"requestSysId":"req-1","requestNumber":"REQ0010001"}`)
	}))
	defer server.Close()

	dir := t.TempDir()
	document := filepath.Join(dir, "gst.pdf")
	if err := os.WriteFile(document, []byte("%PDF-1.4 gst"), 0o600); err != nil {
		t.Fatalf("write document: %v", err)
	}
	htmlPath := filepath.Join(dir, "receipt.html")
	pdfPath := filepath.Join(dir, "receipt.pdf")
	xlsxPath := filepath.Join(dir, "receipt.xlsx")

	args := append(seedsArgs(),
		"--document", document,
		"--receipt-html", htmlPath,
		"--receipt-pdf", pdfPath,
		"--receipt-xlsx", xlsxPath,
	)
	out, err := execute(t, server.URL, args...)
	if err != nil {
		t.Fatalf("submit returned error: %v\n%s", err, out)
	}

	if !strings.Contains(out, "Request No: REQ0010001") {
		t.Errorf("expected success notice, got %s", out)
	}
	if !strings.Contains(out, "Seed Type:") || strings.Contains(out, "Tractor Type:") {
		t.Errorf("unexpected summary %s", out)
	}
	// Detail fields set before the offering in argv must survive the reset.
	if got := posted[model.FieldSeedType]; len(got) != 1 || got[0] != "Hybrid" {
		t.Errorf("seed_type = %v", got)
	}
	if got := posted[model.FieldCurrency]; len(got) != 1 || got[0] != "INR" {
		t.Errorf("currency = %v", got)
	}

	html, err := os.ReadFile(htmlPath)
	if err != nil || !strings.Contains(string(html), "gst.pdf") {
		t.Errorf("html receipt missing or incomplete: %v", err)
	}
	for _, path := range []string{pdfPath, xlsxPath} {
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("expected receipt %s: %v", path, err)
		}
	}
}

func TestSubmitRejectsInvalidForm(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	out, err := execute(t, server.URL, "submit", "--wait=false", "--set", "vendor_country=India")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if calls.Load() != 0 {
		t.Error("invalid form must not reach the backend")
	}
	if !strings.Contains(out, "vendor_name: is required") {
		t.Errorf("expected field errors in output, got %s", out)
	}
}

func TestSubmitServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"success":false,"error":"down","message":"Failed to submit vendor registration"}`)
	}))
	defer server.Close()

	out, err := execute(t, server.URL, seedsArgs()...)
	if err == nil {
		t.Fatal("expected error for a failed submission")
	}
	if !strings.Contains(out, "Submission Failed: Failed to submit vendor registration") {
		t.Errorf("unexpected output %s", out)
	}
}

func TestParseSetsRejectsMalformedPair(t *testing.T) {
	if _, err := parseSets([]string{"vendor_name"}); err == nil {
		t.Error("expected error for a pair without '='")
	}
}

func TestParseSetsLastSelectorWins(t *testing.T) {
	actions, err := parseSets([]string{
		"seed_type=Hybrid",
		"vendor_country=India",
		"service_offering=Tractor",
		"vendor_country=Europe",
		"service_offering=Seeds",
	})
	if err != nil {
		t.Fatalf("parseSets returned error: %v", err)
	}
	state := form.Apply(form.New(), actions...)
	if state.VendorCountry != model.CountryEurope || state.Currency != model.CurrencyEUR {
		t.Errorf("country = %q currency = %q, want Europe/EUR", state.VendorCountry, state.Currency)
	}
	if state.ServiceOffering != model.OfferingSeeds || state.Seeds.Type != "Hybrid" {
		t.Errorf("offering = %q seed type = %q", state.ServiceOffering, state.Seeds.Type)
	}
	if len(actions) != 3 || actions[0].Name != model.FieldVendorCountry || actions[1].Name != model.FieldServiceOffering {
		t.Errorf("unexpected action order %+v", actions)
	}
}

func TestFieldsCommand(t *testing.T) {
	out, err := execute(t, "", "fields", "--country", "Europe", "--offering", "Irrigation")
	if err != nil {
		t.Fatalf("fields returned error: %v", err)
	}
	for _, want := range []string{"Currency: EUR", "irrigation_type, irrigation_quantity", "VAT Document"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %s", want, out)
		}
	}
}

func TestLabsCommand(t *testing.T) {
	out, err := execute(t, "", "labs", "agri")
	if err != nil {
		t.Fatalf("labs returned error: %v", err)
	}
	if !strings.Contains(out, "GreenField Agri Lab") || !strings.Contains(out, "AgriTest Solutions") || strings.Contains(out, "Soil & Crop") {
		t.Errorf("unexpected labs %s", out)
	}
}
