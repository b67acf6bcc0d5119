package dispatch

import (
	"context"
	"strings"
)

// ExpandShortcodes scans content for [tag key="value"] macros and replaces
// each registered tag with its callback's output. Enclosing form
// [tag]inner[/tag] passes the enclosed text to the callback; the
// self-closing form [tag/] and a tag without a closer pass an empty
// string. Unregistered tags and anything that does not parse as a tag are
// emitted untouched.
func (d *Dispatcher) ExpandShortcodes(ctx context.Context, content string) string {
	if len(d.shortcodes) == 0 || !strings.Contains(content, "[") {
		return content
	}

	var out strings.Builder
	i := 0
	for i < len(content) {
		open := strings.IndexByte(content[i:], '[')
		if open < 0 {
			out.WriteString(content[i:])
			break
		}
		open += i
		out.WriteString(content[i:open])

		tag, attrs, width, selfClosing, ok := parseTag(content[open:])
		if !ok {
			out.WriteByte('[')
			i = open + 1
			continue
		}
		end := open + width

		cbs := d.shortcodes[tag]
		if len(cbs) == 0 {
			out.WriteString(content[open:end])
			i = end
			continue
		}

		inner := ""
		if !selfClosing {
			closer := "[/" + tag + "]"
			if idx := strings.Index(content[end:], closer); idx >= 0 {
				inner = content[end : end+idx]
				end += idx + len(closer)
			}
		}

		// Last registration for a tag wins, matching host-platform
		// semantics for re-registered shortcodes.
		if fn, resolved := resolveShortcode(ctx, tag, cbs[len(cbs)-1]); resolved {
			out.WriteString(fn(ctx, attrs, inner))
		}
		i = end
	}
	return out.String()
}

// parseTag reads one bracketed tag starting at s[0] == '['. width is the
// byte count of the opening tag including both brackets.
func parseTag(s string) (tag string, attrs map[string]string, width int, selfClosing bool, ok bool) {
	i := 1
	start := i
	for i < len(s) && isTagChar(s[i]) {
		i++
	}
	if i == start {
		return "", nil, 0, false, false
	}
	tag = s[start:i]
	attrs = make(map[string]string)

	for {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			return "", nil, 0, false, false
		}
		switch {
		case s[i] == ']':
			return tag, attrs, i + 1, false, true
		case s[i] == '/' && i+1 < len(s) && s[i+1] == ']':
			return tag, attrs, i + 2, true, true
		}

		keyStart := i
		for i < len(s) && isTagChar(s[i]) {
			i++
		}
		if i == keyStart {
			return "", nil, 0, false, false
		}
		key := s[keyStart:i]

		if i < len(s) && s[i] == '=' {
			i++
			if i < len(s) && s[i] == '"' {
				i++
				valStart := i
				for i < len(s) && s[i] != '"' {
					i++
				}
				if i >= len(s) {
					return "", nil, 0, false, false
				}
				attrs[key] = s[valStart:i]
				i++
			} else {
				valStart := i
				for i < len(s) && !isSpace(s[i]) && s[i] != ']' && !(s[i] == '/' && i+1 < len(s) && s[i+1] == ']') {
					i++
				}
				attrs[key] = s[valStart:i]
			}
		} else {
			// Bare attribute, present but valueless.
			attrs[key] = ""
		}
	}
}

func isTagChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
