// Package normalize turns a raw localized message into plain prose suitable
// for tokenization: markup is stripped, escape artifacts are collapsed, and
// format-specific placeholders are removed.
package normalize

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/flodolo/gecko-it-qa/internal/placeholder"
	"github.com/flodolo/gecko-it-qa/internal/textutil"

	"golang.org/x/net/html"
)

// emptyPlaceholderLiterals are whole messages carrying nothing but an empty
// Fluent string literal. They must be detected before normalization, which
// would obscure them.
var emptyPlaceholderLiterals = map[string]bool{
	`{""}`:   true,
	`{ "" }`: true,
}

// IsEmptyPlaceholder reports whether the message is an empty-placeholder
// literal and therefore needs no check at all.
func IsEmptyPlaceholder(text string) bool {
	return emptyPlaceholderLiterals[text]
}

// Normalize prepares a message for tokenization. Steps run in fixed order:
// markup stripping, ellipsis and escaped-newline cleanup, path separator and
// assignment padding, then placeholder removal for the file extension.
func Normalize(text, ext string) (string, error) {
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("message is not valid UTF-8")
	}

	cleaned := StripMarkup(textutil.NFC(text))

	cleaned = strings.ReplaceAll(cleaned, "…", " ")
	cleaned = strings.ReplaceAll(cleaned, `\n`, " ")

	// Padding around = prevents spurious token merges on assignment-like
	// syntax; slashes separate path components into words.
	cleaned = strings.ReplaceAll(cleaned, "/", " ")
	cleaned = strings.ReplaceAll(cleaned, "=", " = ")

	return placeholder.Strip(cleaned, ext), nil
}

// StripMarkup removes markup tags, keeping only text content joined by
// single spaces. Tag names and attributes are discarded entirely.
func StripMarkup(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}

	var parts []string
	tokenizer := html.NewTokenizer(strings.NewReader(text))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			parts = append(parts, tokenizer.Token().Data)
		}
	}
	return strings.Join(parts, " ")
}
