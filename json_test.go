package pinniped

import (
	"encoding/json"
	"reflect"
	"testing"
)

// Serialization idempotence: decoding the encoding of any parsed document
// yields an equal value.
func TestJSONRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"# Test\n\nParagraph",
		"This is **bold** and *italic* with `code` and [a](b).",
		"```go\nfmt.Println()\n```",
		"> quote\n> more",
		"- a\n- b\n\n1. x\n2. y",
		"|Name|Age|\n|---|---|\n|John|25|",
		"|a|b|\n|c|d|",
		"***bold and italic* just bold**",
		"This has **unclosed bold text",
	}
	for _, input := range inputs {
		doc := mustParse(t, input)
		data, err := json.Marshal(doc)
		if err != nil {
			t.Fatalf("marshal %q: %v", input, err)
		}
		var decoded Document
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unmarshal %q: %v", input, err)
		}
		if !reflect.DeepEqual(doc, decoded) {
			t.Fatalf("decode mismatch for %q:\n  parsed:  %#v\n  decoded: %#v", input, doc, decoded)
		}
		if got := decoded.Markdown(); got != doc.Markdown() {
			t.Fatalf("render after decode mismatch for %q: %q vs %q", input, got, doc.Markdown())
		}
	}
}

// The wire shape discriminates variants by key presence; embedders depend
// on the exact structure.
func TestJSONVariantShape(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			"header",
			"# Hi",
			`{"blocks":[{"Header":{"level":1,"text":{"elements":[{"Text":"Hi"}]}}}]}`,
		},
		{
			"paragraph with bold",
			"a **b**",
			`{"blocks":[{"Paragraph":{"elements":[{"Text":"a "},{"Bold":[{"Text":"b"}]}]}}]}`,
		},
		{
			"code block without language",
			"```\nx\n```",
			`{"blocks":[{"CodeBlock":{"language":null,"code":"x\n"}}]}`,
		},
		{
			"table",
			"|a|b|\n|c|d|",
			`{"blocks":[{"Table":{"rows":[["a","b"],["c","d"]],"has_header":false}}]}`,
		},
		{
			"link",
			"[t](u)",
			`{"blocks":[{"Paragraph":{"elements":[{"Link":{"text":"t","url":"u"}}]}}]}`,
		},
		{
			"empty document",
			"",
			`{"blocks":[]}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustParse(t, tc.input)
			data, err := json.Marshal(doc)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tc.want {
				t.Fatalf("wire shape mismatch:\n  want %s\n  got  %s", tc.want, data)
			}
		})
	}
}

func TestJSONUnknownVariantRejected(t *testing.T) {
	var doc Document
	err := json.Unmarshal([]byte(`{"blocks":[{"Bogus":{}}]}`), &doc)
	if err == nil {
		t.Fatalf("expected error for unknown block variant")
	}
	err = json.Unmarshal([]byte(`{"blocks":[{"Paragraph":{"elements":[{"Wat":1}]}}]}`), &doc)
	if err == nil {
		t.Fatalf("expected error for unknown inline variant")
	}
}

func TestJSONNegativeHeaderLevelRejected(t *testing.T) {
	var doc Document
	input := `{"blocks":[{"Header":{"level":-1,"text":{"elements":[{"Text":"x"}]}}}]}`
	if err := json.Unmarshal([]byte(input), &doc); err == nil {
		t.Fatalf("expected error for negative header level")
	}
	if len(doc.Blocks) != 0 {
		t.Fatalf("rejected document must not keep blocks, got %#v", doc.Blocks)
	}
}

func TestJSONCodeBlockLanguagePreserved(t *testing.T) {
	doc := mustParse(t, "```rust\nx\n```")
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	code, ok := decoded.Blocks[0].(CodeBlock)
	if !ok {
		t.Fatalf("expected CodeBlock, got %#v", decoded.Blocks[0])
	}
	if code.Language == nil || *code.Language != "rust" {
		t.Fatalf("expected language rust, got %v", code.Language)
	}
}
