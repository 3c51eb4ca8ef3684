package svgprogress

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Style is a flat set of style properties keyed by camelCase name, e.g.
// "borderRadius". Values are numbers (pixels) or strings.
type Style map[string]interface{}

// MergeStyle returns a new Style holding every key of base, replaced or
// extended by the keys of overrides. Neither argument is modified.
func MergeStyle(base, overrides Style) Style {
	merged := make(Style, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// childrenContainerStyle is the default style of the centered content
// region: a circle inset by inset on every side of the surface.
func childrenContainerStyle(inset, side float64) Style {
	return Style{
		"position":       "absolute",
		"left":           inset,
		"top":            inset,
		"width":          side,
		"height":         side,
		"borderRadius":   side / 2,
		"alignItems":     "center",
		"justifyContent": "center",
		"overflow":       "hidden",
	}
}

// Number returns the numeric value stored under key, or fallback when the
// key is missing or not a number.
func (s Style) Number(key string, fallback float64) float64 {
	switch v := s[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return fallback
}

// String returns the string value stored under key, or fallback.
func (s Style) String(key, fallback string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return fallback
}

// CSS renders the style as an inline CSS declaration list with sorted,
// kebab-cased property names. Numbers are written as pixels.
func (s Style) CSS() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	decls := make([]string, 0, len(keys))
	for _, k := range keys {
		var value string
		switch v := s[k].(type) {
		case string:
			value = v
		case float64:
			value = formatNumber(v) + "px"
		case float32, int, int64:
			value = fmt.Sprintf("%vpx", v)
		default:
			value = fmt.Sprint(v)
		}
		decls = append(decls, kebabCase(k)+":"+value)
	}
	return strings.Join(decls, ";")
}

func kebabCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
