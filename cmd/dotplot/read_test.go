package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/dotplot"
)

func TestReadDataset(t *testing.T) {
	tests := []struct {
		in   string
		sep  byte
		want dotplot.Dataset
	}{
		{"1,2,3", ',', dotplot.Dataset{1, 2, 3}},
		{"1, 2 ,3\n4\n", ',', dotplot.Dataset{1, 2, 3, 4}},
		{"1,2,3,3,3,3,5,6,6,2,3,4,2,1,2", ',', dotplot.Dataset{1, 2, 3, 3, 3, 3, 5, 6, 6, 2, 3, 4, 2, 1, 2}},
		{"# weights\n1.5,,-2e3\n\n7\r\n", ',', dotplot.Dataset{1.5, -2000, 7}},
		{"1;2\n3", ';', dotplot.Dataset{1, 2, 3}},
		{"1  2\t\n3", ' ', dotplot.Dataset{1, 2, 3}},
		{"", ',', nil},
	}
	for i, tc := range tests {
		got, err := readDataset(strings.NewReader(tc.in), tc.sep)
		require.NoError(t, err, "%d %q", i, tc.in)
		assert.Equal(t, tc.want, got, "%d %q", i, tc.in)
	}
}

func TestReadDatasetNotNumeric(t *testing.T) {
	for _, in := range []string{"1,x,3", "1\n2\nthree", "1;2"} {
		_, err := readDataset(strings.NewReader(in), ',')
		assert.ErrorIs(t, err, dotplot.ErrNotNumeric, in)
	}
}
