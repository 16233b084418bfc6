package lessc

import "strings"

// StripComments removes /* */ comments from css, leaving quoted strings
// intact. A line left blank by a removed comment is dropped with it. An
// unterminated comment runs to the end of the input.
func StripComments(css string) string {
	if !strings.Contains(css, "/*") {
		return css
	}

	out := make([]byte, 0, len(css))
	var quote byte
	for i := 0; i < len(css); i++ {
		c := css[i]
		switch {
		case quote != 0:
			out = append(out, c)
			if c == '\\' && i+1 < len(css) {
				i++
				out = append(out, css[i])
			} else if c == quote || c == '\n' {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			out = append(out, c)
		case c == '/' && i+1 < len(css) && css[i+1] == '*':
			end := strings.Index(css[i+2:], "*/")
			if end < 0 {
				return string(out)
			}
			i += end + 3
			out, i = dropBlankLine(out, css, i)
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

// dropBlankLine removes the current output line and the newline after i when
// nothing but blanks surrounds the comment that ended at i.
func dropBlankLine(out []byte, css string, i int) ([]byte, int) {
	start := len(out)
	for start > 0 && (out[start-1] == ' ' || out[start-1] == '\t') {
		start--
	}
	if start > 0 && out[start-1] != '\n' {
		return out, i
	}

	next := i + 1
	for next < len(css) && (css[next] == ' ' || css[next] == '\t' || css[next] == '\r') {
		next++
	}
	switch {
	case next == len(css):
		return out[:start], next - 1
	case css[next] == '\n':
		return out[:start], next
	}
	return out, i
}
