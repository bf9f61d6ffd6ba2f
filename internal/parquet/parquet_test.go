package parquet

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/repochurn/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDescriptors() []schema.RepoDescriptor {
	return []schema.RepoDescriptor{
		{
			Name: "hello",
			URL:  "https://github.com/octo/hello",
			ContributionData: []schema.ContributionStat{
				{Login: "Alice Smith", Stats: 75},
				{Login: "Bob", Stats: 25},
			},
		},
		{Name: "empty", URL: "https://github.com/octo/empty", ContributionData: []schema.ContributionStat{}},
		{Name: "", URL: "https://host/owner"},
	}
}

func TestContributionRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(ContributionRow))
	require.NotNil(t, s)

	for _, colName := range []string{"owner", "repo", "url", "rank", "login", "stats", "share", "mined_at"} {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertDescriptors(t *testing.T) {
	minedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := ConvertDescriptors(sampleDescriptors(), minedAt)

	require.Len(t, rows, 2, "only contributors produce rows")
	assert.Equal(t, "octo", rows[0].Owner)
	assert.Equal(t, "hello", rows[0].Repo)
	assert.Equal(t, int32(1), rows[0].Rank)
	assert.Equal(t, "Alice Smith", rows[0].Login)
	assert.Equal(t, int64(75), rows[0].Stats)
	assert.InDelta(t, 75.0, rows[0].Share, 0.001)
	assert.Equal(t, int32(2), rows[1].Rank)
	assert.InDelta(t, 25.0, rows[1].Share, 0.001)
	assert.Equal(t, minedAt, rows[1].MinedAt)
}

func TestWriteContributionsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "contributions.parquet")
	data := ConvertDescriptors(sampleDescriptors(), time.Now())
	require.NotEmpty(t, data)

	require.NoError(t, WriteContributionsParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[ContributionRow](file)
	defer reader.Close()

	readData := make([]ContributionRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, len(data), n, "Should read all records")

	for i := range data {
		assert.Equal(t, data[i].Owner, readData[i].Owner)
		assert.Equal(t, data[i].Repo, readData[i].Repo)
		assert.Equal(t, data[i].Login, readData[i].Login)
		assert.Equal(t, data[i].Stats, readData[i].Stats)
		assert.Equal(t, data[i].Rank, readData[i].Rank)
		assert.InDelta(t, data[i].Share, readData[i].Share, 0.001)
	}
}

func TestWriteContributionsParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteContributionsParquet([]ContributionRow{}, outputPath))

	_, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
}

func TestWriteContributionsParquet_InvalidPath(t *testing.T) {
	err := WriteContributionsParquet(nil, filepath.Join(t.TempDir(), "missing", "out.parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

// closeFailWriter buffers writes and fails on Close.
type closeFailWriter struct {
	bytes.Buffer
	closed bool
}

func (w *closeFailWriter) Close() error {
	w.closed = true
	return errors.New("disk full")
}

func TestWriteRows_CloseError(t *testing.T) {
	out := &closeFailWriter{}
	err := writeRows(out, ConvertDescriptors(sampleDescriptors(), time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to close parquet file")
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, out.closed)
	assert.Equal(t, "PAR1", out.String()[:4])
}
