package llm

import (
	"context"
	"testing"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/entity"
)

func rulesReq(field *entity.FieldDefinition, texts ...string) ExtractRequest {
	pages := make([]*entity.Page, len(texts))
	for i, t := range texts {
		pages[i] = &entity.Page{PageNum: i + 1, Text: t}
	}
	return ExtractRequest{Prompt: "ignored", Field: field, Pages: pages}
}

func TestRulesExtractorDate(t *testing.T) {
	e := NewRulesExtractor(nil)
	field := &entity.FieldDefinition{Key: "issue_date", DataType: constants.TypeDate}

	res, raw, err := e.ExtractField(context.Background(), rulesReq(field, "irrelevant", "Issued 2024-03-05 in Beijing"))
	if err != nil {
		t.Fatalf("ExtractField: %v", err)
	}
	if res.Value != "2024-03-05" || res.Confidence != 0.95 {
		t.Errorf("got %+v", res)
	}
	if res.PageNum == nil || *res.PageNum != 2 {
		t.Errorf("expected page 2, got %v", res.PageNum)
	}
	if len(raw) == 0 {
		t.Errorf("expected raw response bytes for the audit trail")
	}
}

func TestRulesExtractorAmount(t *testing.T) {
	e := NewRulesExtractor(nil)
	field := &entity.FieldDefinition{Key: "premium", DataType: constants.TypeAmount}

	res, _, err := e.ExtractField(context.Background(), rulesReq(field, "Premium due: 1,234.50元 per year"))
	if err != nil {
		t.Fatalf("ExtractField: %v", err)
	}
	if res.Value != "1,234.50元" || res.Confidence != 0.9 {
		t.Errorf("got %+v", res)
	}
}

func TestRulesExtractorEnum(t *testing.T) {
	e := NewRulesExtractor(nil)
	field := &entity.FieldDefinition{
		Key:        "kind",
		DataType:   constants.TypeEnum,
		EnumValues: []string{"Life Insurance", "Auto Insurance"},
	}
	res, _, err := e.ExtractField(context.Background(), rulesReq(field, "This AUTO INSURANCE contract"))
	if err != nil {
		t.Fatalf("ExtractField: %v", err)
	}
	if res.Value != "Auto Insurance" {
		t.Errorf("got %+v", res)
	}
}

func TestRulesExtractorLabeledString(t *testing.T) {
	e := NewRulesExtractor(nil)
	field := &entity.FieldDefinition{Key: "insured_name", Label: "Insured", DataType: constants.TypeString}

	res, _, err := e.ExtractField(context.Background(), rulesReq(field, "Insured: Jane Roe\nPolicy: X1"))
	if err != nil {
		t.Fatalf("ExtractField: %v", err)
	}
	if res.Value != "Jane Roe" || res.Confidence != 0.6 {
		t.Errorf("got %+v", res)
	}
}

func TestRulesExtractorNotFound(t *testing.T) {
	e := NewRulesExtractor(nil)
	field := &entity.FieldDefinition{Key: "missing", Label: "Missing", DataType: constants.TypeString}

	res, _, err := e.ExtractField(context.Background(), rulesReq(field, "nothing relevant"))
	if err != nil {
		t.Fatalf("ExtractField: %v", err)
	}
	if res.Value != "" || res.Confidence != 0 {
		t.Errorf("expected empty value with zero confidence, got %+v", res)
	}
}

func TestParseFieldResult(t *testing.T) {
	res, err := ParseFieldResult([]byte(`{"value":"X1","confidence":0.8,"page_num":2,"bbox":[1,2,3,4]}`))
	if err != nil {
		t.Fatalf("ParseFieldResult: %v", err)
	}
	if res.Value != "X1" || res.Confidence != 0.8 {
		t.Errorf("got %+v", res)
	}
	if res.PageNum == nil || *res.PageNum != 2 {
		t.Errorf("page_num not decoded: %v", res.PageNum)
	}
	if res.BBox == nil || res.BBox[3] != 4 {
		t.Errorf("bbox not decoded: %v", res.BBox)
	}
}

func TestParseFieldResultRejectsInvalid(t *testing.T) {
	cases := []string{
		`{"confidence":0.8}`,                          // missing value
		`{"value":"x","confidence":1.5}`,              // confidence out of range
		`{"value":"x","confidence":0.5,"extra":1}`,    // unknown property
		`{"value":"x","confidence":0.5,"bbox":[1,2]}`, // bad bbox arity
		`not json`,
	}
	for _, c := range cases {
		if _, err := ParseFieldResult([]byte(c)); err == nil {
			t.Errorf("expected validation error for %s", c)
		}
	}
}
