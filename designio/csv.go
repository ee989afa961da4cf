// SPDX-License-Identifier: MIT
// Package designio: CSV serialization of design matrices.
//
// The column layout is the engine's output contract: REAL, SENSNAME,
// SENSCASE, then one column per parameter. ReadTable accepts any table in
// that layout, so existing design matrices can be summarized without
// regenerating them.

package designio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/fjordtools/designkit/design"
)

// WriteCSV writes the design matrix in row order. Floats are rendered with
// strconv 'g' shortest form, which round-trips exactly through ReadTable.
func WriteCSV(w io.Writer, res *design.DesignResult) error {
	if res == nil || len(res.Columns) == 0 {
		return formatErrorf("write: empty design result")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(res.Columns); err != nil {
		return fmt.Errorf("designio: write header: %w", err)
	}

	params := res.ParamColumns()
	record := make([]string, len(res.Columns))
	for _, row := range res.Rows {
		record[0] = strconv.Itoa(row.Real)
		record[1] = row.SensName
		record[2] = row.SensCase
		for i, name := range params {
			v, ok := row.Values[name]
			if !ok {
				return formatErrorf("write: row %d has no value for %q", row.Real, name)
			}
			record[3+i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("designio: write row %d: %w", row.Real, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadTable parses a design matrix previously written by WriteCSV (or any
// table honoring the same layout). The result carries no default values;
// it is sufficient input for design.Summarize.
func ReadTable(r io.Reader) (*design.DesignResult, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, formatErrorf("read header: %v", err)
	}
	if len(header) < 3 || header[0] != design.ColReal ||
		header[1] != design.ColSensName || header[2] != design.ColSensCase {
		return nil, formatErrorf("read: header must start with %s,%s,%s",
			design.ColReal, design.ColSensName, design.ColSensCase)
	}
	params := header[3:]

	res := &design.DesignResult{Columns: header}
	for line := 2; ; line++ {
		record, rerr := cr.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, formatErrorf("read line %d: %v", line, rerr)
		}

		idx, perr := strconv.Atoi(record[0])
		if perr != nil {
			return nil, formatErrorf("read line %d: REAL %q: %v", line, record[0], perr)
		}
		row := design.Realization{
			Real:     idx,
			SensName: record[1],
			SensCase: record[2],
			Values:   make(map[string]float64, len(params)),
		}
		for i, name := range params {
			v, verr := strconv.ParseFloat(record[3+i], 64)
			if verr != nil {
				return nil, formatErrorf("read line %d: %s %q: %v", line, name, record[3+i], verr)
			}
			row.Values[name] = v
		}
		res.Rows = append(res.Rows, row)
	}

	if len(res.Rows) == 0 {
		return nil, formatErrorf("read: table has no rows")
	}
	return res, nil
}
