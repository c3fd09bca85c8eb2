package utils

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"brstats/lib/frame"
)

func NewTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

// RenderFrame prints one frame under a title, as a rounded table or
// as csv.
func RenderFrame(title string, f *frame.Frame, asCSV bool) {
	if f == nil || f.Len() == 0 {
		fmt.Printf("%s: no rows\n", title)
		return
	}
	if !asCSV {
		fmt.Println(title)
	}

	t := NewTable()
	cols := f.Columns()

	header := table.Row{}
	for _, c := range cols {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for i := 0; i < f.Len(); i++ {
		row := table.Row{}
		for _, c := range cols {
			row = append(row, f.At(i, c).String())
		}
		t.AppendRow(row)
	}

	if asCSV {
		t.RenderCSV()
		return
	}
	t.Render()
}
