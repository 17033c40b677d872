package prompt

import (
	"strings"
	"testing"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/entity"
)

func testTemplate() *entity.PromptTemplate {
	return &entity.PromptTemplate{
		Name:         "insurance-default",
		Version:      2,
		SystemPrompt: "You are a careful document analyst.",
		FieldPrompts: map[string]string{
			"policy_number": "The policy number follows the label Policy No.",
		},
	}
}

func pagesOf(texts ...string) []*entity.Page {
	out := make([]*entity.Page, len(texts))
	for i, t := range texts {
		out[i] = &entity.Page{PageNum: i + 1, Text: t}
	}
	return out
}

func TestComposeCustomPromptReplacesFieldInstructions(t *testing.T) {
	field := &entity.FieldDefinition{
		Key:          "policy_number",
		Label:        "Policy Number",
		DataType:     constants.TypeString,
		CustomPrompt: "Just find the policy number.",
	}
	got := Compose(field, testTemplate(), pagesOf("Policy No: ZX-991"))

	// the custom prompt stands in for the field-specific instructions only
	for _, want := range []string{
		"You are a careful document analyst.",
		"Just find the policy number.",
		"==== Page 1 ====",
		"Policy No: ZX-991",
		"confidence (between 0 and 1)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	for _, skip := range []string{
		"Task: extract the field",
		"The policy number follows the label Policy No.",
		"Field info:",
	} {
		if strings.Contains(got, skip) {
			t.Errorf("prompt should not contain %q", skip)
		}
	}
}

func TestComposeIncludesTemplateParts(t *testing.T) {
	field := &entity.FieldDefinition{
		Key:      "policy_number",
		Label:    "Policy Number",
		DataType: constants.TypeString,
		Required: true,
	}
	got := Compose(field, testTemplate(), pagesOf("Policy No: ABC-123"))

	for _, want := range []string{
		"You are a careful document analyst.",
		"extract the field [Policy Number]",
		"The policy number follows the label Policy No.",
		"- data type: string",
		"- required: yes",
		"- allowed enum values: none",
		"==== Page 1 ====",
		"Policy No: ABC-123",
		"confidence (between 0 and 1)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestComposeEnumValuesListed(t *testing.T) {
	field := &entity.FieldDefinition{
		Key:        "doc_kind",
		Label:      "Document Kind",
		DataType:   constants.TypeEnum,
		EnumValues: []string{"invoice", "contract", "receipt"},
	}
	got := Compose(field, testTemplate(), pagesOf("hello"))
	if !strings.Contains(got, "- allowed enum values: invoice, contract, receipt") {
		t.Fatalf("enum values not listed:\n%s", got)
	}
}

func TestComposeContextLimits(t *testing.T) {
	long := strings.Repeat("x", 3*MaxContextChars)
	pages := pagesOf(long, "page two", "page three", "page four")

	got := buildContext(pages)
	if len(got) != MaxContextChars {
		t.Fatalf("expected context truncated to %d chars, got %d", MaxContextChars, len(got))
	}

	// only the first MaxContextPages pages ever contribute
	short := buildContext(pagesOf("a", "b", "c", "NEVER"))
	if strings.Contains(short, "NEVER") {
		t.Errorf("context included page beyond the cap")
	}
	if !strings.Contains(short, "==== Page 3 ====") {
		t.Errorf("context missing page 3 marker: %q", short)
	}
}
