package engine

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/entity"
	"github.com/adeolu-martins/docextract/internal/extract"
)

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"02.01.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// validateField checks a non-empty extracted value against the rule's
// validation spec. Everything here is advisory: the value stays in the
// result and failures surface as warnings. The required-but-missing case is
// handled by the caller as a hard error.
func validateField(rule entity.ExtractionRule, value string) []string {
	spec := rule.Validation
	if spec == nil {
		return nil
	}

	var warnings []string
	warnf := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf("field %q: ", rule.FieldName)+fmt.Sprintf(format, args...))
	}

	if spec.MinLength > 0 && len(value) < spec.MinLength {
		warnf("value %q shorter than %d characters", value, spec.MinLength)
	}
	if spec.MaxLength > 0 && len(value) > spec.MaxLength {
		warnf("value %q longer than %d characters", value, spec.MaxLength)
	}
	if spec.Pattern != "" {
		if re, err := regexp.Compile(spec.Pattern); err != nil {
			warnf("invalid validation pattern %q", spec.Pattern)
		} else if !re.MatchString(value) {
			warnf("value %q does not match pattern %q", value, spec.Pattern)
		}
	}

	switch spec.DataType {
	case constants.TypeNumber:
		if _, err := parseNumeric(value); err != nil {
			warnf("value %q is not a number", value)
		}
	case constants.TypeDate:
		if !parsesAsDate(value) {
			warnf("value %q is not a date", value)
		}
	case constants.TypeCurrency:
		if !extract.LooksLikeCurrency(value) {
			warnf("value %q is not a currency amount", value)
		}
	case constants.TypePercentage:
		if !validPercentage(value) {
			warnf("value %q is not a percentage", value)
		}
	}
	return warnings
}

func parsesAsDate(value string) bool {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// validPercentage accepts a numeric value in [0,100] after stripping a
// trailing percent sign.
func validPercentage(value string) bool {
	v, err := parseNumeric(strings.TrimSuffix(strings.TrimSpace(value), "%"))
	if err != nil {
		return false
	}
	return v >= 0 && v <= 100
}
