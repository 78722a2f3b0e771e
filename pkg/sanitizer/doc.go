// Package sanitizer normalizes raw text before it is parsed: cells read from
// the catalog CSV files and lines typed at the console.
//
// All functions are idempotent - applying them multiple times produces the
// same result. They never fail; parsing and validation happen afterwards.
//
// Normalization includes:
//   - Cells: strip a UTF-8 byte order mark, trim surrounding whitespace
//   - Records: sanitize every cell of a CSV record in place order
//   - Input lines: drop the trailing CR of Windows line endings, trim whitespace
//   - Free text: collapse runs of whitespace into a single space
package sanitizer
