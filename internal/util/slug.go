package util

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphens      = regexp.MustCompile(`-{2,}`)
	slugPattern      = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Slugify строит URL-slug из заголовка.
// Диакритика снимается, остальная кириллица/деванагари транслитерируется.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	result = strings.ToLower(unidecode.Unidecode(result))
	result = strings.Join(strings.Fields(result), "-")
	result = slugInvalidChars.ReplaceAllString(result, "")
	result = slugHyphens.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// IsValidSlug - только строчные латинские буквы, цифры и дефисы
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// NormalizeSlug приводит присланный slug к нижнему регистру без пробелов по краям
func NormalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
