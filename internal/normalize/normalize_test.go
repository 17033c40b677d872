package normalize

import (
	"testing"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/entity"
)

func fieldOf(dt constants.DataType, enums ...string) *entity.FieldDefinition {
	return &entity.FieldDefinition{Key: "f", DataType: dt, EnumValues: enums}
}

func TestValueDate(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2024-03-05", "2024-03-05"},
		{"2024-3-5", "2024-03-05"},
		{"2024/3/5", "2024-03-05"},
		{"2024年3月5日", "2024-03-05"},
		{"  2024-03-05 ", "2024-03-05"},
		{"March 5, 2024", "2024-03-05"},
		{"not a date", "not a date"},
	}
	for _, c := range cases {
		if got := Value(c.in, fieldOf(constants.TypeDate)); got != c.want {
			t.Errorf("date %q: got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValueAmount(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1,234.50元", "1234.5"},
		{"$99.00", "99"},
		{"1000", "1000"},
		{"12.345", "12.345"},
		{"no digits here", "no digits here"},
	}
	for _, c := range cases {
		if got := Value(c.in, fieldOf(constants.TypeAmount)); got != c.want {
			t.Errorf("amount %q: got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValueEnum(t *testing.T) {
	field := fieldOf(constants.TypeEnum, "Life Insurance", "Auto Insurance", "Health")

	cases := []struct{ in, want string }{
		// raw contains the catalog value
		{"this is a life insurance policy", "Life Insurance"},
		// catalog value contains the raw value
		{"auto", "Auto Insurance"},
		// case-insensitive exact
		{"HEALTH", "Health"},
		// first match in catalog order wins
		{"insurance", "Life Insurance"},
		{"unrelated", "unrelated"},
	}
	for _, c := range cases {
		if got := Value(c.in, field); got != c.want {
			t.Errorf("enum %q: got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValueStringIdentity(t *testing.T) {
	if got := Value("  As Written  ", fieldOf(constants.TypeString)); got != "  As Written  " {
		t.Errorf("string values must pass through untouched, got %q", got)
	}
}

func TestValueEmpty(t *testing.T) {
	for _, dt := range []constants.DataType{constants.TypeString, constants.TypeDate, constants.TypeAmount, constants.TypeEnum} {
		if got := Value("", fieldOf(dt)); got != "" {
			t.Errorf("empty value for %s: got %q", dt, got)
		}
	}
}
