package export

import (
	"bufio"
	"io"
	"strings"
)

// WriteCSV 写出 CSV：首行表头，每个字段都加双引号
func WriteCSV(w io.Writer, table Table) error {
	bw := bufio.NewWriter(w)
	if err := writeQuotedLine(bw, table.Header); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := writeQuotedLine(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeQuotedLine(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(quote(field)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
