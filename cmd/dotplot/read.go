package main

import (
	"io"
	"strconv"

	"github.com/gwenn/yacr"
	"github.com/hyp3rd/ewrap"

	"github.com/vdobler/dotplot"
)

// readDataset reads numbers separated by sep from r. A line may hold
// any number of values; blank fields and lines starting with # are
// skipped.
func readDataset(r io.Reader, sep byte) (dotplot.Dataset, error) {
	rd := yacr.NewReader(r, sep, true, false)
	rd.Trim = true
	rd.Comment = '#'

	var data dotplot.Dataset
	for rd.Scan() {
		field := rd.Text()
		if field == "" {
			continue
		}
		x, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, ewrap.Wrapf(dotplot.ErrNotNumeric, "line %d: %q", rd.LineNumber(), field)
		}
		data = append(data, x)
	}
	if err := rd.Err(); err != nil {
		return nil, ewrap.Wrap(err, "read data")
	}
	return data, nil
}
