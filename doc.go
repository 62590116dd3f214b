// Package pinniped parses a constrained Markdown dialect into a document
// tree and renders that tree back to Markdown.
//
// The package aims for syntactic round-trip fidelity: for supported
// constructs, rendering a parsed document reproduces the source text.
// Malformed inline markup never fails the parse; unmatched delimiters and
// broken links degrade to literal text so that no input character is lost.
//
// Core properties:
//   - Whole-document, synchronous, pure in-memory transform
//   - Degrade-to-text policy for every malformed inline construct
//   - Deterministic triple-star disambiguation (Bold+Italic vs Italic+Bold)
//   - JSON codec preserving the tagged-union tree shape for embedders
//
// Example:
//
//	doc, err := pinniped.Parse("# Hello\n\nSome **bold** text.")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(doc.Markdown())
//
// The bridge subpackage exposes the same operations over JSON strings for
// foreign-call and web-runtime hosts.
package pinniped
