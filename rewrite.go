package pdowrap

import "github.com/valyala/bytebufferpool"

// replaceToken rewrites every whole-token occurrence of the :name
// placeholder in query with repl. A token matches only when the
// identifier after the colon equals name exactly, so replacing :id never
// touches :id0 or :id_2. String literals, quoted identifiers, -- and
// /* */ comments and PostgreSQL ::type casts are copied through
// untouched.
func replaceToken(query, name, repl string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i := 0; i < len(query); {
		switch c := query[i]; c {
		case '\'', '"', '`':
			i = copyQuoted(buf, query, i)
		case '-':
			if i+1 < len(query) && query[i+1] == '-' {
				i = copyLineComment(buf, query, i)
			} else {
				buf.WriteByte(c)
				i++
			}
		case '/':
			if i+1 < len(query) && query[i+1] == '*' {
				i = copyBlockComment(buf, query, i)
			} else {
				buf.WriteByte(c)
				i++
			}
		case ':':
			if i+1 < len(query) && query[i+1] == ':' {
				buf.WriteString("::")
				i += 2
				continue
			}
			j := i + 1
			for j < len(query) && isWordByte(query[j]) {
				j++
			}
			if query[i+1:j] == name {
				buf.WriteString(repl)
			} else {
				buf.WriteString(query[i:j])
			}
			i = j
		default:
			buf.WriteByte(c)
			i++
		}
	}
	return buf.String()
}

// copyQuoted copies a literal opened by the quote at query[i], including
// both quotes. A doubled quote is an escape; so is a backslash inside
// single or double quotes. An unterminated literal runs to the end of
// the query.
func copyQuoted(buf *bytebufferpool.ByteBuffer, query string, i int) int {
	q := query[i]
	buf.WriteByte(q)
	i++
	for i < len(query) {
		c := query[i]
		buf.WriteByte(c)
		i++
		if c == '\\' && q != '`' {
			if i < len(query) {
				buf.WriteByte(query[i])
				i++
			}
			continue
		}
		if c == q {
			if i < len(query) && query[i] == q {
				buf.WriteByte(q)
				i++
				continue
			}
			break
		}
	}
	return i
}

// copyLineComment copies a -- comment up to and including the newline.
func copyLineComment(buf *bytebufferpool.ByteBuffer, query string, i int) int {
	for i < len(query) {
		c := query[i]
		buf.WriteByte(c)
		i++
		if c == '\n' {
			break
		}
	}
	return i
}

// copyBlockComment copies a /* comment up to and including the closing
// marker. Nesting is not recognized.
func copyBlockComment(buf *bytebufferpool.ByteBuffer, query string, i int) int {
	buf.WriteString("/*")
	i += 2
	for i < len(query) {
		c := query[i]
		buf.WriteByte(c)
		i++
		if c == '*' && i < len(query) && query[i] == '/' {
			buf.WriteByte('/')
			i++
			break
		}
	}
	return i
}

func isWordByte(c byte) bool {
	return c == '_' ||
		'0' <= c && c <= '9' ||
		'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z'
}
