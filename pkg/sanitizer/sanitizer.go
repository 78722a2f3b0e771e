package sanitizer

import "strings"

const byteOrderMark = "\ufeff"

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

func StripBOM(s string) string {
	return strings.TrimPrefix(s, byteOrderMark)
}

func SanitizeCell(input string) string {
	p := Pipeline{
		StripBOM,
		TrimAndNormalize,
	}
	return p.Apply(input)
}

// SanitizeRecord returns a new slice; the record read from the CSV reader is
// left untouched.
func SanitizeRecord(record []string) []string {
	out := make([]string, len(record))
	for i, cell := range record {
		out[i] = SanitizeCell(cell)
	}
	return out
}

func SanitizeInputLine(line string) string {
	p := Pipeline{
		func(s string) string { return strings.TrimSuffix(s, "\r") },
		StripBOM,
		strings.TrimSpace,
	}
	return p.Apply(line)
}
