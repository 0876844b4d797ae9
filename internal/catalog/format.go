package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Japanese)

// Yen formats n with thousands separators, e.g. 12000 -> "12,000".
func Yen(n int64) string {
	return printer.Sprintf("%d", n)
}

// mil returns a*n/1000. Amounts are multiples of 12000, so every
// per-mille fraction used by the templates is exact.
func mil(a, n int64) int64 {
	return a * n / 1000
}
