// Package printer provides the low-level text-emission engine for a
// source-code pretty-printer.
//
// A Printer converts a sequence of print and newline calls, driven by an
// external tree visitor, into a correctly indented text buffer while
// maintaining an exact cursor position (line, column) after every write.
// The printer knows nothing about the tree being printed; alignment policy
// lives entirely in the caller.
//
// # Indentation Model
//
// Indentation is a stack of prefix strings. The stack starts with a single
// empty entry representing top-level indentation. Each push grows or copies
// the current top:
//
//   - Indent pushes top + the configured indent unit
//   - IndentTo pushes top right-padded with spaces to a target column
//   - DuplicateIndent pushes a verbatim copy of top
//
// Every push must be matched by exactly one Unindent, in strictly nested
// order. The prefix is emitted lazily: it is written the first time content
// is printed on a line, never when the newline itself is emitted, so empty
// lines carry no trailing whitespace.
//
// # Basic Usage
//
//	p := printer.New()
//	p.Println("class A {")
//	p.Indent()
//	p.Println("int x;")
//	p.Unindent()
//	p.Println("}")
//	src := p.Source() // "class A {\n    int x;\n}\n"
//
// # Column Alignment
//
// IndentToCursor anchors continuation lines under the current cursor:
//
//	p := printer.New()
//	p.Print("foo()")
//	p.IndentToCursor()
//	p.Newline()
//	p.Print(".bar()") // "foo()\n     .bar()"
//	p.Unindent()
//
// When the target column is not yet known, DuplicateIndent reserves a level
// that can later be replaced with Unindent followed by IndentTo.
//
// # Contracts
//
// Text passed to Print and Println must not contain line-break characters;
// the printer does not validate this, and violating it corrupts cursor
// tracking. Unbalanced Unindent calls and IndentTo targets smaller than the
// current indentation are programming errors and panic with sentinel errors.
//
// A Printer is not safe for concurrent use. Each printing session owns one
// instance; independent subtrees printed in parallel need separate printers
// whose results the caller concatenates.
package printer
