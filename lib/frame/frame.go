// Package frame implements the small column-ordered table type the
// scrapers build their outputs in. A Frame is a list of named columns
// and rows of cells; cells are either text, numbers, or null, and an
// empty text cell is distinct from a null cell.
package frame

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type kind uint8

const (
	kindNull kind = iota
	kindText
	kindNum
)

// Value is a single cell. The zero value is null.
type Value struct {
	kind kind
	text string
	num  float64
}

func Null() Value            { return Value{} }
func Text(s string) Value    { return Value{kind: kindText, text: s} }
func Num(f float64) Value    { return Value{kind: kindNum, num: f} }
func Int(n int) Value        { return Num(float64(n)) }
func (v Value) IsNull() bool { return v.kind == kindNull }
func (v Value) IsNum() bool  { return v.kind == kindNum }

// String returns the textual form of the cell: "" for null, the text
// itself, or the shortest exact decimal form of a number.
func (v Value) String() string {
	switch v.kind {
	case kindText:
		return v.text
	case kindNum:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return ""
}

// Float returns the numeric form of the cell, parsing text cells on
// the fly. The second return reports whether a number was available.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case kindNum:
		return v.num, true
	case kindText:
		f, err := strconv.ParseFloat(strings.ReplaceAll(v.text, ",", ""), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Int is Float truncated to an int, 0 when no number is available.
func (v Value) Int() int {
	f, ok := v.Float()
	if !ok {
		return 0
	}
	return int(f)
}

func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case kindText:
		return v.text == o.text
	case kindNum:
		return v.num == o.num
	}
	return true
}

// Frame is an ordered set of named columns over rows of cells. Column
// names are unique; mutation is in place, derivation methods return
// new frames sharing no row storage with the receiver.
type Frame struct {
	cols []string
	idx  map[string]int
	rows [][]Value
}

func New(cols ...string) *Frame {
	f := &Frame{idx: map[string]int{}}
	for _, c := range cols {
		f.addColumn(c)
	}
	return f
}

// FromRecords builds a frame from a header row and string records.
// Records shorter than the header are padded with null; longer records
// are an error. Duplicate header names are disambiguated by renaming
// the first occurrence through renameDup, if provided.
func FromRecords(header []string, records [][]string, renameDup map[string]string) (*Frame, error) {
	seen := map[string]int{}
	cols := append([]string(nil), header...)
	for i, name := range cols {
		first, dup := seen[name]
		if !dup {
			seen[name] = i
			continue
		}
		renamed, ok := renameDup[name]
		if !ok {
			renamed = name + " 2"
			first = i
		}
		cols[first] = renamed
	}

	f := New(cols...)
	for _, rec := range records {
		if len(rec) > len(cols) {
			return nil, fmt.Errorf("record has %d cells but header has %d columns", len(rec), len(cols))
		}
		row := make([]Value, len(cols))
		for i, cell := range rec {
			row[i] = Text(cell)
		}
		f.rows = append(f.rows, row)
	}
	return f, nil
}

func (f *Frame) addColumn(name string) {
	if _, ok := f.idx[name]; ok {
		return
	}
	f.idx[name] = len(f.cols)
	f.cols = append(f.cols, name)
	for i := range f.rows {
		f.rows[i] = append(f.rows[i], Null())
	}
}

func (f *Frame) Len() int { return len(f.rows) }

func (f *Frame) Columns() []string {
	return append([]string(nil), f.cols...)
}

func (f *Frame) HasColumn(name string) bool {
	_, ok := f.idx[name]
	return ok
}

// EnsureColumns adds any missing columns, null-filled.
func (f *Frame) EnsureColumns(names ...string) {
	for _, n := range names {
		f.addColumn(n)
	}
}

func (f *Frame) col(name string) int {
	i, ok := f.idx[name]
	if !ok {
		panic(fmt.Sprintf("frame: no column %q", name))
	}
	return i
}

func (f *Frame) At(row int, col string) Value {
	return f.rows[row][f.col(col)]
}

func (f *Frame) Set(row int, col string, v Value) {
	f.EnsureColumns(col)
	f.rows[row][f.col(col)] = v
}

// SetAll sets every cell of the column, creating it if necessary.
func (f *Frame) SetAll(col string, v Value) {
	f.EnsureColumns(col)
	i := f.col(col)
	for r := range f.rows {
		f.rows[r][i] = v
	}
}

// SetWhere sets the column on every row the predicate selects.
func (f *Frame) SetWhere(col string, v Value, keep func(row int) bool) {
	f.EnsureColumns(col)
	i := f.col(col)
	for r := range f.rows {
		if keep(r) {
			f.rows[r][i] = v
		}
	}
}

// AddNum adds delta to a numeric cell, treating null as zero.
func (f *Frame) AddNum(row int, col string, delta float64) {
	cur, _ := f.At(row, col).Float()
	f.Set(row, col, Num(cur+delta))
}

// Apply replaces every cell of the column with fn(cell).
func (f *Frame) Apply(col string, fn func(Value) Value) {
	i := f.col(col)
	for r := range f.rows {
		f.rows[r][i] = fn(f.rows[r][i])
	}
}

func (f *Frame) Rename(old, new string) {
	i, ok := f.idx[old]
	if !ok {
		return
	}
	delete(f.idx, old)
	f.cols[i] = new
	f.idx[new] = i
}

func (f *Frame) Drop(cols ...string) {
	for _, c := range cols {
		i, ok := f.idx[c]
		if !ok {
			continue
		}
		f.cols = append(f.cols[:i], f.cols[i+1:]...)
		delete(f.idx, c)
		for name, j := range f.idx {
			if j > i {
				f.idx[name] = j - 1
			}
		}
		for r := range f.rows {
			f.rows[r] = append(f.rows[r][:i], f.rows[r][i+1:]...)
		}
	}
}

// AppendRow appends a row of len(Columns()) cells.
func (f *Frame) AppendRow(vals ...Value) error {
	if len(vals) != len(f.cols) {
		return fmt.Errorf("row has %d cells but frame has %d columns", len(vals), len(f.cols))
	}
	f.rows = append(f.rows, append([]Value(nil), vals...))
	return nil
}

// AppendMap appends a row given as a column-to-value map; unnamed
// columns are null.
func (f *Frame) AppendMap(vals map[string]Value) {
	row := make([]Value, len(f.cols))
	for col, v := range vals {
		row[f.col(col)] = v
	}
	f.rows = append(f.rows, row)
}

func (f *Frame) Copy() *Frame {
	out := New(f.cols...)
	out.rows = make([][]Value, len(f.rows))
	for i, row := range f.rows {
		out.rows[i] = append([]Value(nil), row...)
	}
	return out
}

// Select returns a copy holding only the named columns, in the given
// order. Unknown columns appear null-filled.
func (f *Frame) Select(cols ...string) *Frame {
	out := New(cols...)
	out.rows = make([][]Value, len(f.rows))
	for r := range f.rows {
		row := make([]Value, len(cols))
		for i, c := range cols {
			if j, ok := f.idx[c]; ok {
				row[i] = f.rows[r][j]
			}
		}
		out.rows[r] = row
	}
	return out
}

// Reindex is Select with canonical-schema intent: the result carries
// exactly the given columns, so columns absent from a given page still
// appear, empty.
func (f *Frame) Reindex(cols []string) *Frame {
	return f.Select(cols...)
}

// Filter returns a copy holding only the rows the predicate keeps.
func (f *Frame) Filter(keep func(row int) bool) *Frame {
	out := New(f.cols...)
	for r := range f.rows {
		if keep(r) {
			out.rows = append(out.rows, append([]Value(nil), f.rows[r]...))
		}
	}
	return out
}

// DropRow removes a single row in place.
func (f *Frame) DropRow(row int) {
	f.rows = append(f.rows[:row], f.rows[row+1:]...)
}

// SortStable reorders rows in place with a stable sort.
func (f *Frame) SortStable(less func(i, j int) bool) {
	sort.SliceStable(f.rows, func(i, j int) bool { return less(i, j) })
}

// FindRows returns the indices of the rows the predicate selects.
func (f *Frame) FindRows(pred func(row int) bool) []int {
	var out []int
	for r := range f.rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Concat stacks frames top to bottom. The result's columns are the
// union of the inputs' columns in order of first appearance; cells for
// columns a frame lacks are null.
func Concat(frames ...*Frame) *Frame {
	out := New()
	for _, f := range frames {
		if f == nil {
			continue
		}
		out.EnsureColumns(f.cols...)
	}
	for _, f := range frames {
		if f == nil {
			continue
		}
		for _, row := range f.rows {
			dst := make([]Value, len(out.cols))
			for i, c := range f.cols {
				dst[out.col(c)] = row[i]
			}
			out.rows = append(out.rows, dst)
		}
	}
	return out
}

// Join appends the other frame's columns to the receiver by row
// position. Columns already present keep the receiver's cells. Rows
// beyond the other frame's length get nulls; rows beyond the
// receiver's length are dropped.
func (f *Frame) Join(other *Frame) {
	if other == nil {
		return
	}
	for _, c := range other.cols {
		if f.HasColumn(c) {
			continue
		}
		f.addColumn(c)
		i := f.col(c)
		j := other.col(c)
		for r := range f.rows {
			if r < len(other.rows) {
				f.rows[r][i] = other.rows[r][j]
			}
		}
	}
}

// ConvertNumeric converts, column by column, every column whose
// non-null non-empty cells all parse as numbers. Empty text cells in a
// converted column become null.
func (f *Frame) ConvertNumeric() {
	for i := range f.cols {
		numeric := false
		ok := true
		for _, row := range f.rows {
			v := row[i]
			if v.IsNull() || v.IsNum() {
				continue
			}
			if v.text == "" {
				continue
			}
			if _, err := strconv.ParseFloat(v.text, 64); err != nil {
				ok = false
				break
			}
			numeric = true
		}
		if !ok || !numeric {
			continue
		}
		for r, row := range f.rows {
			v := row[i]
			if v.IsNull() || v.IsNum() {
				continue
			}
			if v.text == "" {
				f.rows[r][i] = Null()
				continue
			}
			n, _ := strconv.ParseFloat(v.text, 64)
			f.rows[r][i] = Num(n)
		}
	}
}
