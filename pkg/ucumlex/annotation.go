package ucumlex

import (
	"strconv"
	"strings"

	"github.com/ucum-go/ucum/pkg/ucumerr"
)

// annotationMarker is the control character used to delimit a
// placeholder left behind by ExtractAnnotations. It cannot appear in
// a well-formed UCUM expression, so placeholders are unambiguous once
// inserted.
const annotationMarker = '\x01'

// ExtractAnnotations replaces every `{…}` segment in s with a
// placeholder token and returns the rewritten string alongside the
// original annotation texts, indexed in order of appearance.
// Annotations are opaque: their contents (including non-ASCII bytes)
// are preserved verbatim for later reattachment and never interpreted.
func ExtractAnnotations(s string) (rewritten string, texts []string, err error) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] != '{' {
			b.WriteByte(s[i])
			i++
			continue
		}
		start := i
		end := strings.IndexByte(s[i+1:], '}')
		if end == -1 {
			return "", nil, ucumerr.New(ucumerr.UnbalancedBrackets, start,
				"unterminated annotation starting at %d", start)
		}
		text := s[i+1 : i+1+end]
		texts = append(texts, text)
		b.WriteByte(annotationMarker)
		b.WriteString(strconv.Itoa(len(texts) - 1))
		b.WriteByte(annotationMarker)
		i = i + 1 + end + 1
	}
	return b.String(), texts, nil
}

// annotationIndex reports whether tok is an annotation placeholder
// and, if so, which index into the texts slice it refers to.
func annotationIndex(tok string) (int, bool) {
	if len(tok) < 3 || tok[0] != annotationMarker || tok[len(tok)-1] != annotationMarker {
		return 0, false
	}
	n, err := strconv.Atoi(tok[1 : len(tok)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}
