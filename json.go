package pinniped

import (
	"encoding/json"
	"fmt"
)

// The JSON shape is part of the embedding contract: every union value is an
// object with exactly one key naming the active variant, so consumers
// discriminate by key presence. Field names (blocks, elements, level, text,
// language, code, rows, has_header, url) are fixed.

// MarshalJSON encodes the document as {"blocks":[...]}.
func (d Document) MarshalJSON() ([]byte, error) {
	blocks := d.Blocks
	if blocks == nil {
		blocks = []Block{}
	}
	return json.Marshal(struct {
		Blocks []Block `json:"blocks"`
	}{Blocks: blocks})
}

// UnmarshalJSON decodes {"blocks":[...]}.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Blocks []json.RawMessage `json:"blocks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Blocks = nil
	for _, msg := range raw.Blocks {
		block, err := unmarshalBlock(msg)
		if err != nil {
			return err
		}
		d.Blocks = append(d.Blocks, block)
	}
	return nil
}

type headerJSON struct {
	Level int        `json:"level"`
	Text  InlineText `json:"text"`
}

type codeBlockJSON struct {
	Language *string `json:"language"`
	Code     string  `json:"code"`
}

type tableJSON struct {
	Rows      [][]string `json:"rows"`
	HasHeader bool       `json:"has_header"`
}

type linkJSON struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

func variant(name string, payload any) ([]byte, error) {
	return json.Marshal(map[string]any{name: payload})
}

// MarshalJSON encodes the paragraph as {"Paragraph":{"elements":[...]}}.
func (p Paragraph) MarshalJSON() ([]byte, error) {
	return variant("Paragraph", p.Text)
}

// MarshalJSON encodes the header as {"Header":{"level":N,"text":{...}}}.
func (h Header) MarshalJSON() ([]byte, error) {
	return variant("Header", headerJSON{Level: h.Level, Text: h.Text})
}

// MarshalJSON encodes the list as {"UnorderedList":[{...},...]}.
func (l UnorderedList) MarshalJSON() ([]byte, error) {
	return variant("UnorderedList", itemsOrEmpty(l.Items))
}

// MarshalJSON encodes the list as {"OrderedList":[{...},...]}.
func (l OrderedList) MarshalJSON() ([]byte, error) {
	return variant("OrderedList", itemsOrEmpty(l.Items))
}

// MarshalJSON encodes the block as {"CodeBlock":{"language":...,"code":...}}.
// An absent language is null, not "".
func (c CodeBlock) MarshalJSON() ([]byte, error) {
	return variant("CodeBlock", codeBlockJSON{Language: c.Language, Code: c.Code})
}

// MarshalJSON encodes the quote as {"Blockquote":{"elements":[...]}}.
func (q Blockquote) MarshalJSON() ([]byte, error) {
	return variant("Blockquote", q.Text)
}

// MarshalJSON encodes the table as {"Table":{"rows":[...],"has_header":...}}.
func (t Table) MarshalJSON() ([]byte, error) {
	rows := t.Rows
	if rows == nil {
		rows = [][]string{}
	}
	return variant("Table", tableJSON{Rows: rows, HasHeader: t.HasHeader})
}

func itemsOrEmpty(items []InlineText) []InlineText {
	if items == nil {
		return []InlineText{}
	}
	return items
}

func unmarshalBlock(data []byte) (Block, error) {
	name, payload, err := splitVariant(data)
	if err != nil {
		return nil, err
	}
	switch name {
	case "Paragraph":
		var text InlineText
		if err := json.Unmarshal(payload, &text); err != nil {
			return nil, err
		}
		return Paragraph{Text: text}, nil
	case "Header":
		var h headerJSON
		if err := json.Unmarshal(payload, &h); err != nil {
			return nil, err
		}
		if h.Level < 0 {
			return nil, fmt.Errorf("header level %d out of range", h.Level)
		}
		return Header{Level: h.Level, Text: h.Text}, nil
	case "UnorderedList":
		items, err := unmarshalItems(payload)
		if err != nil {
			return nil, err
		}
		return UnorderedList{Items: items}, nil
	case "OrderedList":
		items, err := unmarshalItems(payload)
		if err != nil {
			return nil, err
		}
		return OrderedList{Items: items}, nil
	case "CodeBlock":
		var c codeBlockJSON
		if err := json.Unmarshal(payload, &c); err != nil {
			return nil, err
		}
		return CodeBlock{Language: c.Language, Code: c.Code}, nil
	case "Blockquote":
		var text InlineText
		if err := json.Unmarshal(payload, &text); err != nil {
			return nil, err
		}
		return Blockquote{Text: text}, nil
	case "Table":
		var t tableJSON
		if err := json.Unmarshal(payload, &t); err != nil {
			return nil, err
		}
		rows := t.Rows
		if len(rows) == 0 {
			rows = nil
		}
		return Table{Rows: rows, HasHeader: t.HasHeader}, nil
	}
	return nil, fmt.Errorf("unknown block variant %q", name)
}

func unmarshalItems(data []byte) ([]InlineText, error) {
	var raw []InlineText
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// MarshalJSON encodes the run as {"elements":[...]}.
func (t InlineText) MarshalJSON() ([]byte, error) {
	elements := t.Elements
	if elements == nil {
		elements = []InlineElement{}
	}
	return json.Marshal(struct {
		Elements []InlineElement `json:"elements"`
	}{Elements: elements})
}

// UnmarshalJSON decodes {"elements":[...]}.
func (t *InlineText) UnmarshalJSON(data []byte) error {
	var raw struct {
		Elements []json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Elements = nil
	for _, msg := range raw.Elements {
		element, err := unmarshalInlineElement(msg)
		if err != nil {
			return err
		}
		t.Elements = append(t.Elements, element)
	}
	return nil
}

// MarshalJSON encodes the run as {"Text":"..."}.
func (t Text) MarshalJSON() ([]byte, error) {
	return variant("Text", string(t))
}

// MarshalJSON encodes the span as {"Bold":[...]}.
func (b Bold) MarshalJSON() ([]byte, error) {
	return variant("Bold", elementsOrEmpty(b))
}

// MarshalJSON encodes the span as {"Italic":[...]}.
func (i Italic) MarshalJSON() ([]byte, error) {
	return variant("Italic", elementsOrEmpty(i))
}

// MarshalJSON encodes the span as {"Code":"..."}.
func (c Code) MarshalJSON() ([]byte, error) {
	return variant("Code", string(c))
}

// MarshalJSON encodes the span as {"Link":{"text":"...","url":"..."}}.
func (l Link) MarshalJSON() ([]byte, error) {
	return variant("Link", linkJSON{Text: l.Text, URL: l.URL})
}

func elementsOrEmpty(elements []InlineElement) []InlineElement {
	if elements == nil {
		return []InlineElement{}
	}
	return elements
}

func unmarshalInlineElement(data []byte) (InlineElement, error) {
	name, payload, err := splitVariant(data)
	if err != nil {
		return nil, err
	}
	switch name {
	case "Text":
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return nil, err
		}
		return Text(s), nil
	case "Bold":
		elements, err := unmarshalElements(payload)
		if err != nil {
			return nil, err
		}
		return Bold(elements), nil
	case "Italic":
		elements, err := unmarshalElements(payload)
		if err != nil {
			return nil, err
		}
		return Italic(elements), nil
	case "Code":
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return nil, err
		}
		return Code(s), nil
	case "Link":
		var l linkJSON
		if err := json.Unmarshal(payload, &l); err != nil {
			return nil, err
		}
		return Link{Text: l.Text, URL: l.URL}, nil
	}
	return nil, fmt.Errorf("unknown inline variant %q", name)
}

func unmarshalElements(data []byte) ([]InlineElement, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var elements []InlineElement
	for _, msg := range raw {
		element, err := unmarshalInlineElement(msg)
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
	return elements, nil
}

func splitVariant(data []byte) (string, json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", nil, err
	}
	if len(obj) != 1 {
		return "", nil, fmt.Errorf("expected single-variant object, got %d keys", len(obj))
	}
	for name, payload := range obj {
		return name, payload, nil
	}
	return "", nil, fmt.Errorf("empty variant object")
}
