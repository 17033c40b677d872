// Package prompt composes per-field extraction prompts from the active
// template, the field definition and the document's page text.
package prompt

import (
	"fmt"
	"strings"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/entity"
)

const (
	// MaxContextPages caps how many leading pages feed the context window.
	MaxContextPages = 3
	// MaxContextChars hard-truncates the assembled context.
	MaxContextChars = 2000
)

// Compose builds the prompt for one field. A non-empty custom prompt on the
// field definition replaces the task line, field instruction and field info
// block; the system prompt, page context and output-format instruction stay.
func Compose(field *entity.FieldDefinition, tpl *entity.PromptTemplate, pages []*entity.Page) string {
	var b strings.Builder
	b.WriteString(tpl.SystemPrompt)
	b.WriteString("\n\n")
	if field.CustomPrompt != "" {
		b.WriteString(field.CustomPrompt)
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "Task: extract the field [%s] from the context below.\n", field.Label)
		if fieldPrompt := tpl.FieldPrompts[field.Key]; fieldPrompt != "" {
			b.WriteString(fieldPrompt)
			b.WriteString("\n")
		}
		b.WriteString("\nField info:\n")
		fmt.Fprintf(&b, "- data type: %s\n", field.DataType)
		fmt.Fprintf(&b, "- required: %s\n", yesNo(field.Required))
		fmt.Fprintf(&b, "- allowed enum values: %s\n", enumList(field))
	}
	b.WriteString("\nContext:\n")
	b.WriteString(buildContext(pages))
	b.WriteString("\n\nReturn a JSON object with value (the extracted value) and confidence (between 0 and 1).\n")
	b.WriteString("If the field cannot be found, return an empty string value with confidence 0.\n")
	return b.String()
}

// buildContext concatenates the first pages with page markers, hard-capped at
// MaxContextChars measured over the whole assembled string.
func buildContext(pages []*entity.Page) string {
	var b strings.Builder
	for i, page := range pages {
		if i >= MaxContextPages {
			break
		}
		fmt.Fprintf(&b, "\n==== Page %d ====\n", page.PageNum)
		b.WriteString(page.Text)
		if b.Len() > MaxContextChars {
			return b.String()[:MaxContextChars]
		}
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func enumList(field *entity.FieldDefinition) string {
	if field.DataType != constants.TypeEnum || len(field.EnumValues) == 0 {
		return "none"
	}
	return strings.Join(field.EnumValues, ", ")
}
