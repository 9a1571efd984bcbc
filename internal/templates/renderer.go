package templates

import "strings"

// Data maps placeholder names to replacement strings.
type Data map[string]string

// Render substitutes every ${name} placeholder in text with its mapped value.
// A placeholder with no entry renders as the empty string. Every other byte,
// including a bare '$' and unterminated '${', is preserved as-is.
//
// Rendering is a pure function: the same text and data always yield the same
// output. There is no control flow; values are inserted literally.
func Render(text string, data Data) string {
	var b strings.Builder
	b.Grow(len(text))

	for {
		i := strings.Index(text, "${")
		if i < 0 {
			b.WriteString(text)
			break
		}

		j := strings.Index(text[i+2:], "}")
		if j < 0 {
			// Unterminated placeholder: keep the remainder verbatim.
			b.WriteString(text)
			break
		}

		b.WriteString(text[:i])
		b.WriteString(data[text[i+2:i+2+j]])
		text = text[i+2+j+1:]
	}

	return b.String()
}
