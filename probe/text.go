package probe

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hangxie/parquet-probe/model"
)

// PageText describes a page for the content zone of its row
func PageText(p model.Page) string {
	switch page := p.(type) {
	case model.DataPage:
		return fmt.Sprintf("DataPage [%s], values:%d, page stats:%s",
			page.Encoding, page.NumValues, statsText(page.Statistics))
	case model.DataPageV2:
		return "DataPageV2"
	case model.DictionaryPage:
		return fmt.Sprintf("DictionaryPage[%s], num_values:%d, sorted:%t",
			page.Encoding, page.NumValues, page.IsSorted)
	}
	// unreachable while model.Page stays sealed
	return "Unexpected page type"
}

func statsText(stats *model.Statistics) string {
	if stats == nil {
		return "N/A"
	}
	if stats.NullCount == nil {
		return "nulls: n/a"
	}
	return fmt.Sprintf("nulls: %d", *stats.NullCount)
}

// PageLabel is the text of the label zone: page index and byte length
func PageLabel(index int, size int64) string {
	return fmt.Sprintf("#%d %db", index, size)
}

// HeaderLine is the header entry of the document in slot i, with the total
// size of the selected column chunk pages
func HeaderLine(i int, doc *Document) string {
	return fmt.Sprintf("File %s: %s (%s)", Label(i), doc.Path(), model.FormatBytes(doc.TotalBytes()))
}

// PanelTitle is the title of the panel of the document in slot i
func PanelTitle(i int, doc *Document) string {
	column := fmt.Sprintf("%d", doc.Column())
	if name := doc.ColumnName(); name != "" {
		column = fmt.Sprintf("%d (%s)", doc.Column(), name)
	}
	return fmt.Sprintf(" File:%s Row Group: %d Column: %s Pages:%d ",
		Label(i), doc.RowGroup(), column, len(doc.Pages()))
}

// Summary lists the current pages of a document, one line per page with
// the labels padded to a common width
func Summary(i int, doc *Document) string {
	pages := doc.Pages()
	labels := make([]string, len(pages))
	labelWidth := 0
	for j, p := range pages {
		labels[j] = PageLabel(j, doc.PageBytes(p))
		labelWidth = max(labelWidth, runewidth.StringWidth(labels[j]))
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(PanelTitle(i, doc)))
	sb.WriteString(" ")
	sb.WriteString(doc.Path())
	sb.WriteString("\n")
	for j, p := range pages {
		sb.WriteString(fmt.Sprintf("%s %s\n", runewidth.FillRight(labels[j], labelWidth), PageText(p)))
	}
	return sb.String()
}
