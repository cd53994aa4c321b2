package scanner_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teicheck/teicheck/internal/adapters/outbound/scanner"
)

const corpusDir = "../../../../testdata/corpus"

func TestExpand_FilesPassThrough(t *testing.T) {
	file := filepath.Join(corpusDir, "perfect", "poem.xml")
	files, err := scanner.New().Expand([]string{file})
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}

func TestExpand_WalksDirectoriesForXML(t *testing.T) {
	files, err := scanner.New().Expand([]string{filepath.Join(corpusDir, "perfect")})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Contains(t, files[0], "__cts__.xml")
	assert.Contains(t, files[1], "poem.xml")
}

func TestExpand_MissingPathErrors(t *testing.T) {
	_, err := scanner.New().Expand([]string{"no/such/path"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no/such/path")
}

func TestExpand_PreservesArgumentOrder(t *testing.T) {
	poem := filepath.Join(corpusDir, "perfect", "poem.xml")
	cts := filepath.Join(corpusDir, "perfect", "__cts__.xml")
	files, err := scanner.New().Expand([]string{poem, cts})
	require.NoError(t, err)
	assert.Equal(t, []string{poem, cts}, files)
}
