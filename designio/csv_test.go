// SPDX-License-Identifier: MIT

package designio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fjordtools/designkit/design"
	"github.com/fjordtools/designkit/designio"
)

func generatedResult(t *testing.T) *design.DesignResult {
	t.Helper()
	cfg, err := designio.LoadConfig(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	res, err := design.Generate(cfg)
	require.NoError(t, err)
	return res
}

func TestCSVRoundTrip(t *testing.T) {
	res := generatedResult(t)

	var buf bytes.Buffer
	require.NoError(t, designio.WriteCSV(&buf, res))

	back, err := designio.ReadTable(&buf)
	require.NoError(t, err)

	require.Equal(t, res.Columns, back.Columns)
	require.Len(t, back.Rows, len(res.Rows))
	for i, row := range res.Rows {
		require.Equal(t, row.Real, back.Rows[i].Real)
		require.Equal(t, row.SensName, back.Rows[i].SensName)
		require.Equal(t, row.SensCase, back.Rows[i].SensCase)
		// Shortest-form float formatting round-trips exactly.
		require.Equal(t, row.Values, back.Rows[i].Values)
	}
}

func TestReadTableFeedsSummarize(t *testing.T) {
	res := generatedResult(t)

	var buf bytes.Buffer
	require.NoError(t, designio.WriteCSV(&buf, res))
	back, err := designio.ReadTable(&buf)
	require.NoError(t, err)

	fromFresh, err := design.Summarize(res)
	require.NoError(t, err)
	fromTable, err := design.Summarize(back)
	require.NoError(t, err)
	require.Equal(t, fromFresh, fromTable)
}

func TestWriteCSVRejectsEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, designio.WriteCSV(&buf, nil), designio.ErrFormat)
	require.ErrorIs(t, designio.WriteCSV(&buf, &design.DesignResult{}), designio.ErrFormat)
}

func TestReadTableRejectsBadInput(t *testing.T) {
	_, err := designio.ReadTable(strings.NewReader(""))
	require.ErrorIs(t, err, designio.ErrFormat)

	_, err = designio.ReadTable(strings.NewReader("A,B,C\n"))
	require.ErrorIs(t, err, designio.ErrFormat)

	_, err = designio.ReadTable(strings.NewReader("REAL,SENSNAME,SENSCASE,X\n"))
	require.ErrorIs(t, err, designio.ErrFormat) // header only, no rows

	_, err = designio.ReadTable(strings.NewReader("REAL,SENSNAME,SENSCASE,X\nzero,a,b,1\n"))
	require.ErrorIs(t, err, designio.ErrFormat)

	_, err = designio.ReadTable(strings.NewReader("REAL,SENSNAME,SENSCASE,X\n0,a,b,notafloat\n"))
	require.ErrorIs(t, err, designio.ErrFormat)
}
