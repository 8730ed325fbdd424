package form

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nurpe/vendor-onboarding/internal/model"
)

const (
	MaxDocumentSize = 10 << 20
	dateLayout      = "2006-01-02"
)

// DocumentExtensions are the accepted compliance document types.
var DocumentExtensions = []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"}

// Errors maps a form key to a human readable problem.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, key := range slices.Sorted(maps.Keys(e)) {
		parts = append(parts, key+": "+e[key])
	}
	return strings.Join(parts, "; ")
}

type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled()), now: now}

	v.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.validate.RegisterValidation("minnum", validateMinNumber)
	_ = v.validate.RegisterValidation("notpast", v.validateNotPast)
	_ = v.validate.RegisterValidation("offering", validateOffering)
	_ = v.validate.RegisterValidation("country", validateCountry)
	_ = v.validate.RegisterValidation("lab", validateLab)
	_ = v.validate.RegisterValidation("sampletype", validateSampleType)
	return v
}

// Validate checks the common fields, the detail record of the selected
// offering and the optional document. It returns Errors or nil.
func (v *Validator) Validate(state State, doc *model.Document) error {
	errs := Errors{}

	v.collect(errs, state.VendorSubmission)
	if details := state.Details(); details != nil {
		v.collect(errs, details)
	}
	if doc != nil {
		if msg := checkDocument(doc); msg != "" {
			errs[model.FieldDocument] = msg
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *Validator) collect(errs Errors, target any) {
	err := v.validate.Struct(target)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["form"] = err.Error()
		return
	}
	for _, fe := range fieldErrs {
		errs[fe.Field()] = message(fe)
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "minnum":
		return "must be at least " + fe.Param()
	case "notpast":
		return "cannot be in the past"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "lab":
		return "must be one of the reference labs"
	default:
		return "is not a supported option"
	}
}

func checkDocument(doc *model.Document) string {
	if len(doc.Content) > MaxDocumentSize {
		return fmt.Sprintf("must be at most %d MB", MaxDocumentSize>>20)
	}
	ext := strings.ToLower(filepath.Ext(doc.Name))
	for _, allowed := range DocumentExtensions {
		if ext == allowed {
			return ""
		}
	}
	return "must be one of " + strings.Join(DocumentExtensions, ", ")
}

func validateMinNumber(fl validator.FieldLevel) bool {
	threshold, err := strconv.ParseFloat(fl.Param(), 64)
	if err != nil {
		return false
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
	if err != nil {
		return false
	}
	return value >= threshold
}

func (v *Validator) validateNotPast(fl validator.FieldLevel) bool {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	y, m, d := v.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !parsed.Before(today)
}

func validateOffering(fl validator.FieldLevel) bool {
	value := model.Offering(fl.Field().String())
	for _, offering := range model.Offerings {
		if value == offering {
			return true
		}
	}
	return false
}

func validateCountry(fl validator.FieldLevel) bool {
	return model.CurrencyFor(model.Country(fl.Field().String())) != ""
}

func validateLab(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, lab := range model.Labs {
		if value == lab.Name {
			return true
		}
	}
	return false
}

func validateSampleType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, sample := range model.SampleTypes {
		if value == sample {
			return true
		}
	}
	return false
}
