package pinniped

import (
	"errors"
	"reflect"
	"testing"
)

func mustParse(t *testing.T, input string) Document {
	t.Helper()
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return doc
}

func TestParseHeaderBlock(t *testing.T) {
	doc := mustParse(t, "# Hello World")
	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
	}
	header, ok := doc.Blocks[0].(Header)
	if !ok {
		t.Fatalf("expected Header, got %#v", doc.Blocks[0])
	}
	if header.Level != 1 {
		t.Fatalf("expected level 1, got %d", header.Level)
	}
	if got := header.Text.Markdown(); got != "Hello World" {
		t.Fatalf("expected %q, got %q", "Hello World", got)
	}
}

func TestParseHeaderLevelIsHashCount(t *testing.T) {
	doc := mustParse(t, "####### deep")
	header, ok := doc.Blocks[0].(Header)
	if !ok {
		t.Fatalf("expected Header, got %#v", doc.Blocks[0])
	}
	if header.Level != 7 {
		t.Fatalf("hash count is not capped: expected level 7, got %d", header.Level)
	}
}

func TestParseBlockKinds(t *testing.T) {
	doc := mustParse(t, "# Title\n\npara\n\n- a\n- b\n\n1. x\n2. y\n\n> quoted\n\n|a|b|\n|c|d|")
	kinds := []string{"Header", "Paragraph", "UnorderedList", "OrderedList", "Blockquote", "Table"}
	if len(doc.Blocks) != len(kinds) {
		t.Fatalf("expected %d blocks, got %d: %#v", len(kinds), len(doc.Blocks), doc.Blocks)
	}
	for i, kind := range kinds {
		got := reflect.TypeOf(doc.Blocks[i]).Name()
		if got != kind {
			t.Fatalf("block %d: expected %s, got %s", i, kind, got)
		}
	}
}

func TestParseBlankLineRunsCollapse(t *testing.T) {
	doc := mustParse(t, "Paragraph 1\n\n\n\nParagraph 2")
	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %#v", len(doc.Blocks), doc.Blocks)
	}
	for i, block := range doc.Blocks {
		if _, ok := block.(Paragraph); !ok {
			t.Fatalf("block %d: expected Paragraph, got %#v", i, block)
		}
	}
}

func TestParseCodeFence(t *testing.T) {
	doc := mustParse(t, "```rust\nfn main() {}\n```")
	code, ok := doc.Blocks[0].(CodeBlock)
	if !ok {
		t.Fatalf("expected CodeBlock, got %#v", doc.Blocks[0])
	}
	if code.Language == nil || *code.Language != "rust" {
		t.Fatalf("expected language rust, got %v", code.Language)
	}
	if code.Code != "fn main() {}\n" {
		t.Fatalf("unexpected code content %q", code.Code)
	}
}

func TestParseCodeFenceWithoutLanguage(t *testing.T) {
	doc := mustParse(t, "```\nx\n```")
	code, ok := doc.Blocks[0].(CodeBlock)
	if !ok {
		t.Fatalf("expected CodeBlock, got %#v", doc.Blocks[0])
	}
	if code.Language != nil {
		t.Fatalf("expected nil language, got %q", *code.Language)
	}
}

func TestParseUnterminatedFence(t *testing.T) {
	doc := mustParse(t, "before\n\n```go\nfunc x()")
	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %#v", len(doc.Blocks), doc.Blocks)
	}
	code, ok := doc.Blocks[1].(CodeBlock)
	if !ok {
		t.Fatalf("expected trailing CodeBlock, got %#v", doc.Blocks[1])
	}
	if code.Code != "func x()" {
		t.Fatalf("unexpected code content %q", code.Code)
	}
}

func TestParseFenceContentIsNotInlineParsed(t *testing.T) {
	doc := mustParse(t, "```\nsome code with ` backticks\n```")
	code, ok := doc.Blocks[0].(CodeBlock)
	if !ok {
		t.Fatalf("expected CodeBlock, got %#v", doc.Blocks[0])
	}
	if code.Code != "some code with ` backticks\n" {
		t.Fatalf("unexpected code content %q", code.Code)
	}
}

func TestParseMixedListMarkersFallThroughToParagraph(t *testing.T) {
	// One non-conforming line disqualifies the whole section: a mixed
	// marker list is a single Paragraph.
	doc := mustParse(t, "- Item 1\n1. Item 2\n- Item 3")
	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
	}
	if _, ok := doc.Blocks[0].(Paragraph); !ok {
		t.Fatalf("expected Paragraph, got %#v", doc.Blocks[0])
	}
}

func TestParseBlockquoteRequiresSpace(t *testing.T) {
	doc := mustParse(t, ">Quote without space after >")
	if _, ok := doc.Blocks[0].(Paragraph); !ok {
		t.Fatalf("expected Paragraph, got %#v", doc.Blocks[0])
	}
}

func TestParseBlockquoteJoinsLines(t *testing.T) {
	doc := mustParse(t, "> line one\n> line two")
	quote, ok := doc.Blocks[0].(Blockquote)
	if !ok {
		t.Fatalf("expected Blockquote, got %#v", doc.Blocks[0])
	}
	if got := quote.Text.Markdown(); got != "line one\nline two" {
		t.Fatalf("expected joined lines, got %q", got)
	}
}

func TestParseOrderedListStripsMarkers(t *testing.T) {
	doc := mustParse(t, "1. First item\n2. Second item")
	list, ok := doc.Blocks[0].(OrderedList)
	if !ok {
		t.Fatalf("expected OrderedList, got %#v", doc.Blocks[0])
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Items))
	}
	if got := list.Items[0].Markdown(); got != "First item" {
		t.Fatalf("expected %q, got %q", "First item", got)
	}
}

func TestParseRaggedTableRows(t *testing.T) {
	doc := mustParse(t, "|Name|Age|\n|John|\n|Jane|30|Extra|")
	table, ok := doc.Blocks[0].(Table)
	if !ok {
		t.Fatalf("expected Table, got %#v", doc.Blocks[0])
	}
	want := [][]string{{"Name", "Age"}, {"John"}, {"Jane", "30", "Extra"}}
	if !reflect.DeepEqual(table.Rows, want) {
		t.Fatalf("expected %v, got %v", want, table.Rows)
	}
	if table.HasHeader {
		t.Fatalf("ragged table must not detect a header")
	}
}

func TestParseEmptyInput(t *testing.T) {
	doc := mustParse(t, "")
	if len(doc.Blocks) != 0 {
		t.Fatalf("expected no blocks, got %#v", doc.Blocks)
	}
	if got := doc.Markdown(); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	_, err := Parse(string([]byte{0xff, 0xfe, 0xfd}))
	if err == nil {
		t.Fatalf("expected error for invalid utf-8")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestParseBinaryInput(t *testing.T) {
	_, err := Parse("text\x00more")
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func BenchmarkParseComplexDocument(b *testing.B) {
	input := "# My Document\n\nThis is a **paragraph** with *formatting*.\n\n## Code Example\n\n```rust\nfn hello() {\n    println!(\"Hello!\");\n}\n```\n\n> This is a quote\n\n- List item 1\n- List item 2\n\n|Col1|Col2|\n|---|---|\n|A|B|"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(input); err != nil {
			b.Fatalf("parse: %v", err)
		}
	}
}
