package format

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// WriteEDN writes v as EDN. Values pass through JSON first so struct field
// names follow their json tags, e.g. a root becomes
// {:id "node-x" :name "A" :type "folder"}.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}

	ew := &ednWriter{pretty: pretty}
	ew.value(generic)
	ew.sb.WriteByte('\n')
	_, err = io.WriteString(w, ew.sb.String())
	return err
}

type ednWriter struct {
	sb     strings.Builder
	pretty bool
	depth  int
}

func (ew *ednWriter) value(v any) {
	switch t := v.(type) {
	case nil:
		ew.sb.WriteString("nil")
	case bool:
		ew.sb.WriteString(strconv.FormatBool(t))
	case string:
		ew.sb.WriteString(strconv.Quote(t))
	case float64:
		ew.sb.WriteString(ednNumber(t))
	case []any:
		ew.collection('[', ']', len(t), func(i int) { ew.value(t[i]) })
	case map[string]any:
		keys := slices.Sorted(maps.Keys(t))
		ew.collection('{', '}', len(keys), func(i int) {
			ew.sb.WriteString(":" + ednKeyword(keys[i]) + " ")
			ew.value(t[keys[i]])
		})
	default:
		ew.sb.WriteString(strconv.Quote(fmt.Sprint(v)))
	}
}

// collection writes n elements between open and close. Compact output
// separates elements with a space; pretty output puts each on its own
// line, indented two spaces per level.
func (ew *ednWriter) collection(open, close byte, n int, elem func(int)) {
	ew.sb.WriteByte(open)
	ew.depth++
	for i := 0; i < n; i++ {
		switch {
		case ew.pretty:
			ew.newline()
		case i > 0:
			ew.sb.WriteByte(' ')
		}
		elem(i)
	}
	ew.depth--
	if ew.pretty && n > 0 {
		ew.newline()
	}
	ew.sb.WriteByte(close)
}

func (ew *ednWriter) newline() {
	ew.sb.WriteByte('\n')
	ew.sb.WriteString(strings.Repeat("  ", ew.depth))
}

// ednNumber prints integral values without a fraction; JSON numbers all
// decode as float64.
func ednNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func ednKeyword(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "-")
}
