// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/babynames/pkg/types"
)

func sampleResult() types.ExtractionResult {
	return types.ExtractionResult{
		Year: "2006",
		Names: []types.RankedName{
			{Name: "Ashley", Rank: "2"},
			{Name: "Michael", Rank: "1"},
		},
	}
}

func TestRender(t *testing.T) {
	res := sampleResult()

	t.Run("text", func(t *testing.T) {
		for _, f := range []types.OutputFormat{types.FormatText, ""} {
			data, err := Render(res, f)
			require.NoError(t, err)
			assert.Equal(t, "2006\nAshley 2\nMichael 1\n", string(data))
		}
	})

	t.Run("text year only", func(t *testing.T) {
		data, err := Render(types.ExtractionResult{Year: "1999"}, types.FormatText)
		require.NoError(t, err)
		assert.Equal(t, "1999\n", string(data))
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := Render(res, types.FormatYAML)
		require.NoError(t, err)
		assert.Contains(t, string(data), "year: \"2006\"")

		var got types.ExtractionResult
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, res, got)
	})

	t.Run("json", func(t *testing.T) {
		data, err := Render(res, types.FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, byte('\n'), data[len(data)-1])

		var got types.ExtractionResult
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, res, got)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := Render(res, "csv")
		assert.ErrorContains(t, err, `unsupported format "csv"`)
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    types.OutputFormat
		wantErr bool
	}{
		{in: "text", want: types.FormatText},
		{in: "", want: types.FormatText},
		{in: "yaml", want: types.FormatYAML},
		{in: "json", want: types.FormatJSON},
		{in: "YAML", wantErr: true},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
