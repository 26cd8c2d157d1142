package style

import (
	"regexp"
)

var tagPattern = regexp.MustCompile(`\[([a-z]+)\]((?s:.*?))\[/([a-z]+)\]`)

// Render replaces [name]text[/name] tags with the named style. Unknown tags
// are left as they are. With plain set, tags are stripped instead.
func Render(text string, plain bool) string {
	for {
		changed := false
		text = tagPattern.ReplaceAllStringFunc(text, func(match string) string {
			m := tagPattern.FindStringSubmatch(match)
			if m[1] != m[3] || !Has(m[1]) {
				return match
			}
			changed = true
			if plain {
				return m[2]
			}
			return GetStyle(m[1]).Render(m[2])
		})
		if !changed {
			return text
		}
	}
}

// Tag wraps text in a markup tag
func Tag(name, text string) string {
	return "[" + name + "]" + text + "[/" + name + "]"
}
