// Package bridge exposes the parse/render engine over JSON strings for
// foreign-call and web-runtime hosts. Every function takes and returns
// plain strings so the surface crosses language boundaries without shared
// types; documents travel as the tagged-union JSON produced by the core.
package bridge

import (
	"encoding/json"
	"fmt"

	"pkt.systems/pinniped"
)

// Parse parses Markdown and returns the document as JSON.
func Parse(markdown string) (string, error) {
	doc, err := pinniped.Parse(markdown)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(data), nil
}

// Render decodes document JSON and returns its Markdown rendering.
func Render(docJSON string) (string, error) {
	doc, err := decode(docJSON)
	if err != nil {
		return "", err
	}
	return doc.Markdown(), nil
}

// Navigate moves within the table at block index block, from (row, col) in
// the given direction, and returns the resulting position as JSON:
// {"row":N,"col":N,"valid":bool}. Out-of-bounds moves are valid JSON with
// "valid":false and the origin position.
func Navigate(docJSON string, block, row, col int, dir pinniped.Direction) (string, error) {
	table, err := tableAt(docJSON, block)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(table.Navigate(row, col, dir))
	if err != nil {
		return "", fmt.Errorf("encode position: %w", err)
	}
	return string(data), nil
}

// Cell returns the content of the cell at (row, col) in the table at block
// index block, as JSON: {"content":"..."}.
func Cell(docJSON string, block, row, col int) (string, error) {
	table, err := tableAt(docJSON, block)
	if err != nil {
		return "", err
	}
	content, err := table.Cell(row, col)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(struct {
		Content string `json:"content"`
	}{Content: content})
	if err != nil {
		return "", fmt.Errorf("encode cell: %w", err)
	}
	return string(data), nil
}

// ErrorJSON wraps an error as the {"error":"..."} envelope for hosts that
// have no error channel of their own.
func ErrorJSON(err error) string {
	data, marshalErr := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: err.Error()})
	if marshalErr != nil {
		return `{"error":"unrepresentable error"}`
	}
	return string(data)
}

func decode(docJSON string) (pinniped.Document, error) {
	var doc pinniped.Document
	if err := json.Unmarshal([]byte(docJSON), &doc); err != nil {
		return pinniped.Document{}, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

func tableAt(docJSON string, block int) (pinniped.Table, error) {
	doc, err := decode(docJSON)
	if err != nil {
		return pinniped.Table{}, err
	}
	return doc.TableAt(block)
}
