// Package normalize converts raw extracted values into canonical form by
// field data type. Normalization never fails: values that do not parse are
// returned unchanged so the raw extraction is preserved.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/entity"
)

// dateLayouts use non-padded reference components so both "2024-03-05" and
// "2024-3-5" parse.
var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"2006年1月2日",
	"2006.1.2",
	"January 2, 2006",
	"2 January 2006",
}

var nonAmount = regexp.MustCompile(`[^\d.]`)

// Value normalizes one raw value according to the field's data type.
func Value(raw string, field *entity.FieldDefinition) string {
	if raw == "" {
		return raw
	}
	switch field.DataType {
	case constants.TypeDate:
		return date(raw)
	case constants.TypeAmount:
		return amount(raw)
	case constants.TypeEnum:
		return enum(raw, field.EnumValues)
	default:
		return raw
	}
}

// date canonicalizes to YYYY-MM-DD with zero-padded month and day.
func date(raw string) string {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}

// amount strips currency symbols and units, keeping a plain decimal number.
// "1,234.50元" becomes "1234.5".
func amount(raw string) string {
	s := nonAmount.ReplaceAllString(raw, "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return raw
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// enum maps the raw value onto the first catalog entry related to it by
// case-insensitive substring in either direction.
func enum(raw string, values []string) string {
	rawLower := strings.ToLower(raw)
	for _, v := range values {
		vLower := strings.ToLower(v)
		if strings.Contains(rawLower, vLower) || strings.Contains(vLower, rawLower) {
			return v
		}
	}
	return raw
}
