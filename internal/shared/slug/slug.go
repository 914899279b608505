package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Türkçe karakterler lowercase'den önce sadeleştirilir ("Yazılım" -> "yazilim").
var turkish = strings.NewReplacer(
	"ı", "i", "İ", "i",
	"ş", "s", "Ş", "s",
	"ğ", "g", "Ğ", "g",
	"ç", "c", "Ç", "c",
	"ö", "o", "Ö", "o",
	"ü", "u", "Ü", "u",
)

// FromTitle derives a URL slug from a human-readable name or title.
// Deterministic: the same input always yields the same slug.
func FromTitle(s string) string {
	s = turkish.Replace(strings.TrimSpace(s))
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "icerik"
	}
	return s
}
