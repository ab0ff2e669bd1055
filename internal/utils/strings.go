package utils

import (
	"strings"

	"github.com/gosimple/slug"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanList trims entries, drops empty ones and removes duplicates keeping the
// first occurrence.
func CleanList(in []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, v := range in {
		v = NormalizeSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// SafeFilename builds a download filename such as "kwitansi-gita-al-lago.pdf".
func SafeFilename(prefix, name, ext string) string {
	part := slug.Make(name)
	if part == "" {
		part = "na"
	}
	if len(part) > 40 {
		part = strings.TrimRight(part[:40], "-")
	}
	return prefix + "-" + part + "." + ext
}
