package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarchetti/pcalab/internal/pca"
)

const countiesCSV = `state,county,population,income,college
WI,Dane,500000,65000,48.2
WI,Milwaukee,950000,52000,31.5
WI,Door,30000,58000,33.1
IL,Cook,5200000,61000,40.1
IL,DuPage,930000,88000,49.9
IL,Lake,700000,91000,46.3
MI,Wayne,1750000,47000,25.8
MI,Oakland,1270000,79000,45.6
MI,Kent,660000,63000,35.0
`

func TestReadTable(t *testing.T) {
	table, err := ReadTable(strings.NewReader(countiesCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"population", "income", "college"}, table.Columns)
	require.Len(t, table.Rows, 9)
	assert.Equal(t, "WI", table.Rows[0].State)
	assert.Equal(t, "Dane", table.Rows[0].County)
	assert.Equal(t, []float64{500000, 65000, 48.2}, table.Rows[0].Values)
}

func TestReadTableErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want error
	}{
		{
			name: "empty input",
			csv:  "",
			want: ErrEmptyTable,
		},
		{
			name: "header only",
			csv:  "state,county,population\n",
			want: ErrEmptyTable,
		},
		{
			name: "no state column",
			csv:  "region,county,population\nWI,Dane,500000\n",
			want: ErrMissingColumn,
		},
		{
			name: "no numeric columns",
			csv:  "state,county\nWI,Dane\n",
			want: ErrMissingColumn,
		},
		{
			name: "bad value",
			csv:  "state,county,population\nWI,Dane,many\n",
			want: ErrBadValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTable(strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSelect(t *testing.T) {
	table, err := ReadTable(strings.NewReader(countiesCSV))
	require.NoError(t, err)

	sub, err := table.Select("college", "income")
	require.NoError(t, err)
	assert.Equal(t, []string{"college", "income"}, sub.Columns)
	assert.Equal(t, []float64{48.2, 65000}, sub.Rows[0].Values)

	// The source table keeps its own column order.
	assert.Equal(t, []string{"population", "income", "college"}, table.Columns)

	_, err = table.Select("density")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestGroupByState(t *testing.T) {
	table, err := ReadTable(strings.NewReader(countiesCSV))
	require.NoError(t, err)

	groups := table.GroupByState()
	require.Len(t, groups, 3)

	// Sorted by state key.
	assert.Equal(t, "IL", groups[0].Key)
	assert.Equal(t, "MI", groups[1].Key)
	assert.Equal(t, "WI", groups[2].Key)

	wi := groups[2]
	assert.Equal(t, []string{"Dane", "Milwaukee", "Door"}, wi.Counties)
	rows, cols := wi.Matrix.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 950000.0, wi.Matrix.At(1, 0))
}

func TestMatrix(t *testing.T) {
	table, err := ReadTable(strings.NewReader(countiesCSV))
	require.NoError(t, err)

	m := table.Matrix()
	rows, cols := m.Dims()
	assert.Equal(t, 9, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 61000.0, m.At(3, 1))
}

func TestWriteScores(t *testing.T) {
	table, err := ReadTable(strings.NewReader(countiesCSV))
	require.NoError(t, err)

	groups := table.GroupByState()
	il := groups[0]

	d, err := pca.Decompose(il.Matrix)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteScores(&buf, il, d, 2))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "state,county,pc1,pc2", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "IL,Cook,"))

	err = WriteScores(&buf, il, d, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, pca.ErrComponentRange)
}
