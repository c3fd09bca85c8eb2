// Package htmltable turns stats tables into string records. It copes
// with the two quirks of the source markup: tables wrapped in HTML
// comments to defer rendering, and pages that stack two sub-tables
// (regular season and postseason) under one element with a repeated
// header row between them.
package htmltable

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"brstats/lib/htmlutil"
)

// Unwrap returns the table inside the selection, re-parsing a
// comment-wrapped table if the markup defers it. When onlyIfTable is
// set, a comment without a <table> inside leaves the selection as is.
func Unwrap(sel *goquery.Selection, onlyIfTable bool) *goquery.Selection {
	if sel == nil {
		return nil
	}
	if t := tableOf(sel); t != nil {
		return t
	}
	for _, doc := range htmlutil.UnwrapComments(sel) {
		if t := doc.Find("table").First(); t.Length() > 0 {
			return t
		}
		if !onlyIfTable {
			return doc.Selection
		}
	}
	return sel
}

func tableOf(sel *goquery.Selection) *goquery.Selection {
	if goquery.NodeName(sel) == "table" {
		return sel
	}
	if t := sel.Find("table").First(); t.Length() > 0 {
		return t
	}
	return nil
}

// Row is one <tr>: its id attribute and the trimmed text of its th and
// td cells.
type Row struct {
	ID    string
	Cells []string
}

// Rows extracts every <tr> of the table in document order.
func Rows(table *goquery.Selection) []Row {
	var rows []Row
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		id, _ := tr.Attr("id")
		row := Row{ID: id}
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			row.Cells = append(row.Cells, strings.TrimSpace(cell.Text()))
		})
		rows = append(rows, row)
	})
	return rows
}

// Records is Rows without the row ids.
func Records(table *goquery.Selection) [][]string {
	rows := Rows(table)
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = r.Cells
	}
	return records
}

// Section is one sub-table: a header record and the data rows under
// it.
type Section struct {
	Header []string
	Rows   []Row
}

// SplitOnHeader splits a table's rows into sections at each header
// row, recognized by its first cell equaling headerKey. Rows with an
// empty first cell (the spanner row above the real header) are
// skipped. Rows before the first header are dropped.
func SplitOnHeader(rows []Row, headerKey string) []Section {
	var sections []Section
	for _, row := range rows {
		if len(row.Cells) == 0 || row.Cells[0] == "" {
			continue
		}
		if row.Cells[0] == headerKey {
			sections = append(sections, Section{Header: row.Cells})
			continue
		}
		if len(sections) == 0 {
			continue
		}
		last := &sections[len(sections)-1]
		last.Rows = append(last.Rows, row)
	}
	return sections
}
