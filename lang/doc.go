// Package lang implements the lmcl markup language: a flat, line-oriented
// notation that translates to an HTML document.
//
// # Syntax
//
// Each statement occupies one line and ends with a semicolon:
//
//	let <tag>[.<class>] <name> = <value>;   // store and place
//	store <name> = <value>;                 // store only
//	place <tag>[.<class>] = <value>;        // place only
//
// A value containing a double quote anywhere is a literal and has its
// leading and trailing quotes removed. Any other value names a symbol
// stored by an earlier let or store statement. Names are unique: storing a
// name twice is an error.
//
// Blank lines and lines beginning with // are ignored. Every other line
// must begin with let, store or place.
//
// # Tags
//
// The recognized tags and their elements are:
//
//	paragraph, p  -> p
//	title, h1     -> h1
//	subtitle, h2  -> h2
//	h3 .. h6      -> h3 .. h6
//	div           -> div
//
// # Translation
//
// [Filter] validates source lines, [Session.Exec] translates one line at a
// time, and [Translate] folds a whole line list into a document:
//
//	doc, err := lang.TranslateString(ctx, `let title top = "Hello";`)
//	// <!DOCTYPE html>
//	// <html>
//	// <head><meta charset="UTF-8"></head>
//	// <body>
//	// <h1 id="top">Hello</h1>
//	// </body>
//	// </html>
//
// All errors are fatal and are reported as a [*LineError] carrying the
// 1-based source line and its text.
package lang
