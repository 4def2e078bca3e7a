package page

import (
	"fmt"
	"io"

	"github.com/admin-nexus/internal/export"
)

// Export 导出当前过滤结果（不分页），返回文件名
func (p *Page[T]) Export(w io.Writer, format string) (string, error) {
	normalized, ok := export.NormalizeFormat(format)
	if !ok {
		p.fail(KindExport)
		return "", fmt.Errorf("unsupported export format %q", format)
	}
	table := export.Build(p.opts.Columns, p.Filtered())
	var err error
	if normalized == export.FormatXLSX {
		err = export.WriteXLSX(w, p.opts.Resource, table)
	} else {
		err = export.WriteCSV(w, table)
	}
	if err != nil {
		p.fail(KindExport)
		return "", err
	}
	p.succeed(KindExport)
	return export.Filename(p.opts.Resource, normalized, p.opts.Now()), nil
}
