package frame_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"brstats/lib/frame"
)

func TestFromRecordsPadsAndRenamesDuplicates(t *testing.T) {
	f, err := frame.FromRecords(
		[]string{"Batting", "AB", "Batting"},
		[][]string{
			{"Jose Altuve 2B", "4", "details"},
			{"short"},
		},
		map[string]string{"Batting": "Name"},
	)
	require.NoError(t, err)
	require.Equal(t, []string{"Name", "AB", "Batting"}, f.Columns())
	require.Equal(t, 2, f.Len())
	require.Equal(t, "Jose Altuve 2B", f.At(0, "Name").String())
	require.True(t, f.At(1, "AB").IsNull())

	_, err = frame.FromRecords([]string{"A"}, [][]string{{"1", "2"}}, nil)
	require.Error(t, err)
}

func TestSetCreatesColumn(t *testing.T) {
	f, err := frame.FromRecords([]string{"Name"}, [][]string{{"a"}, {"b"}}, nil)
	require.NoError(t, err)
	f.Set(1, "HR", frame.Int(2))
	require.True(t, f.At(0, "HR").IsNull())
	require.Equal(t, 2, f.At(1, "HR").Int())
}

func TestAddNumTreatsNullAsZero(t *testing.T) {
	f := frame.New("SB")
	require.NoError(t, f.AppendRow(frame.Null()))
	f.AddNum(0, "SB", 1)
	f.AddNum(0, "SB", 2)
	require.Equal(t, 3, f.At(0, "SB").Int())
}

func TestReindexFillsMissingColumns(t *testing.T) {
	f, err := frame.FromRecords([]string{"Name", "AB"}, [][]string{{"a", "4"}}, nil)
	require.NoError(t, err)
	out := f.Reindex([]string{"Name", "AB", "HR"})
	require.Equal(t, []string{"Name", "AB", "HR"}, out.Columns())
	require.True(t, out.At(0, "HR").IsNull())
}

func TestConcatUnionsColumns(t *testing.T) {
	a, err := frame.FromRecords([]string{"Name", "AB"}, [][]string{{"a", "4"}}, nil)
	require.NoError(t, err)
	b, err := frame.FromRecords([]string{"Name", "IP"}, [][]string{{"b", "6.1"}}, nil)
	require.NoError(t, err)
	out := frame.Concat(a, b)
	require.Equal(t, []string{"Name", "AB", "IP"}, out.Columns())
	require.Equal(t, 2, out.Len())
	require.True(t, out.At(0, "IP").IsNull())
	require.Equal(t, "6.1", out.At(1, "IP").String())
}

func TestJoinByRowPosition(t *testing.T) {
	a, err := frame.FromRecords([]string{"Name", "WAR"}, [][]string{{"a", "1.0"}, {"b", "2.0"}}, nil)
	require.NoError(t, err)
	b, err := frame.FromRecords([]string{"Name", "Salary"}, [][]string{{"a", "$1"}}, nil)
	require.NoError(t, err)
	a.Join(b)
	require.Equal(t, []string{"Name", "WAR", "Salary"}, a.Columns())
	require.Equal(t, "$1", a.At(0, "Salary").String())
	require.True(t, a.At(1, "Salary").IsNull())
}

func TestFilterAndSortStable(t *testing.T) {
	f, err := frame.FromRecords([]string{"Name", "Tm"}, [][]string{
		{"a", "HOU"}, {"b", "NYY"}, {"c", "HOU"},
	}, nil)
	require.NoError(t, err)

	hou := f.Filter(func(r int) bool { return f.At(r, "Tm").String() == "HOU" })
	require.Equal(t, 2, hou.Len())

	f.SortStable(func(i, j int) bool {
		return f.At(i, "Name").String() > f.At(j, "Name").String()
	})
	require.Equal(t, "c", f.At(0, "Name").String())
	require.Equal(t, "a", f.At(2, "Name").String())
}

func TestConvertNumeric(t *testing.T) {
	f, err := frame.FromRecords([]string{"Name", "AB", "BA"}, [][]string{
		{"a", "4", ".300"},
		{"b", "", "x"},
	}, nil)
	require.NoError(t, err)
	f.ConvertNumeric()

	require.Equal(t, "a", f.At(0, "Name").String())
	require.True(t, f.At(0, "AB").IsNum())
	require.True(t, f.At(1, "AB").IsNull())
	require.False(t, f.At(1, "BA").IsNum())
	require.Equal(t, "x", f.At(1, "BA").String())
}

func TestValueFloatParsesText(t *testing.T) {
	v := frame.Text("1,234")
	n, ok := v.Float()
	require.True(t, ok)
	require.Equal(t, 1234.0, n)

	_, ok = frame.Text("n/a").Float()
	require.False(t, ok)
	require.Equal(t, "2", frame.Int(2).String())
}
