package catalog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exfcerror "github.com/msto63/exfc/foundation/core/error"
	"github.com/msto63/exfc/pkg/exception"
)

const tomlCatalog = `
[[exception]]
name = "TimeoutException"
description = "operation timed out"
id = 40

[[exception]]
name = "RetryException"
`

const yamlCatalog = `
exception:
  - name: TimeoutException
    description: operation timed out
    id: 40
  - name: RetryException
`

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"toml", tomlCatalog, FormatTOML},
		{"yaml", yamlCatalog, FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)
			require.Len(t, f.Exceptions, 2)

			first := f.Exceptions[0]
			assert.Equal(t, "TimeoutException", first.Name)
			assert.Equal(t, "operation timed out", first.Description)
			require.NotNil(t, first.ID)
			assert.Equal(t, 40, *first.ID)

			assert.Equal(t, "RetryException", f.Exceptions[1].Name)
			assert.Nil(t, f.Exceptions[1].ID)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("[[exception]\nname="), FormatTOML)
	assert.True(t, exfcerror.HasCode(err, exfcerror.CodeInvalidFormat))

	_, err = Parse([]byte("exception: [ {"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse(nil, Format("ini"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/etc/exfc/catalog.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFromPath("catalog.toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	_, err = FormatFromPath("catalog.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlCatalog), 0644))

	f, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Source)
	assert.Len(t, f.Exceptions, 2)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestEncodeIsReadable(t *testing.T) {
	records := []exception.Record{
		{Name: "A", Description: "first", ID: 1},
		{Name: "B", ID: 2},
	}

	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, FromRecords(records).Encode(&buf, format))

			f, err := Parse(buf.Bytes(), format)
			require.NoError(t, err)
			require.Len(t, f.Exceptions, 2)
			assert.Equal(t, "first", f.Exceptions[0].Description)
			assert.Equal(t, 2, *f.Exceptions[1].ID)
		})
	}

	var buf bytes.Buffer
	require.NoError(t, FromRecords(records).Encode(&buf, FormatTOML))
	assert.Contains(t, buf.String(), "[[exception]]")
}
