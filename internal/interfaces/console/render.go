package console

import (
	"io"
	"strings"
	"unicode/utf8"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

const noDataMessage = "No data available."

// Table is a record set ready for display. Every row has one cell per header.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (t Table) empty() bool {
	return len(t.Rows) == 0
}

type Renderer interface {
	Render(w io.Writer, table Table) error
}

// NewRenderer returns the renderer for format ("json" or anything else for
// the aligned table).
func NewRenderer(format string) Renderer {
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return JSONRenderer{}
	}
	return TableRenderer{}
}

// TableRenderer pads each column to its widest cell plus three spaces and
// separates the header from the rows with a dash rule.
type TableRenderer struct{}

func (TableRenderer) Render(w io.Writer, table Table) error {
	if table.empty() {
		_, err := io.WriteString(w, noDataMessage+"\n")
		return err
	}

	widths := make([]int, len(table.Headers))
	for i, header := range table.Headers {
		widths[i] = utf8.RuneCountInString(header)
	}
	for _, row := range table.Rows {
		for i := range widths {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell(row, i)))
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_ = buf.WriteByte('\n')
	for i, header := range table.Headers {
		writePadded(buf, header, widths[i]+3)
	}

	rule := 0
	for _, width := range widths {
		rule += width + 2
	}
	_ = buf.WriteByte('\n')
	_, _ = buf.WriteString(strings.Repeat("-", rule))
	_ = buf.WriteByte('\n')

	for _, row := range table.Rows {
		for i := range widths {
			writePadded(buf, cell(row, i), widths[i]+3)
		}
		_ = buf.WriteByte('\n')
	}

	_, err := buf.WriteTo(w)
	return err
}

func writePadded(buf *bytebufferpool.ByteBuffer, value string, width int) {
	_, _ = buf.WriteString(value)
	if pad := width - utf8.RuneCountInString(value); pad > 0 {
		_, _ = buf.WriteString(strings.Repeat(" ", pad))
	}
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// JSONRenderer writes the rows as an array of objects keyed by header, keys in
// column order.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, table Table) error {
	if table.empty() {
		_, err := io.WriteString(w, noDataMessage+"\n")
		return err
	}

	records := make([]record, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, record{headers: table.Headers, row: row})
	}

	return sonic.ConfigStd.NewEncoder(w).Encode(records)
}

// record is one table row encoded as a JSON object with keys in column order.
type record struct {
	headers []string
	row     []string
}

func (r record) MarshalJSON() ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_ = buf.WriteByte('{')
	for i, header := range r.headers {
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		key, err := sonic.ConfigStd.Marshal(header)
		if err != nil {
			return nil, err
		}
		value, err := sonic.ConfigStd.Marshal(cell(r.row, i))
		if err != nil {
			return nil, err
		}
		_, _ = buf.Write(key)
		_ = buf.WriteByte(':')
		_, _ = buf.Write(value)
	}
	_ = buf.WriteByte('}')

	return append([]byte(nil), buf.B...), nil
}
