package cli

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockDataWithIDs []int

func (m mockDataWithIDs) GetIDs() []int {
	return m
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

func newFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, ErrOut: &errOut}, &out, &errOut
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result), "output: %s", buf.String())
	return result
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		validate func(t *testing.T, data interface{})
	}{
		{
			name: "map data",
			data: map[string]interface{}{"test": "value"},
			validate: func(t *testing.T, data interface{}) {
				assert.Equal(t, "value", data.(map[string]interface{})["test"])
			},
		},
		{
			name: "struct with ID",
			data: mockDataWithID{ID: 123, Name: "Test"},
			validate: func(t *testing.T, data interface{}) {
				assert.Equal(t, "Test", data.(map[string]interface{})["Name"])
			},
		},
		{
			name: "list",
			data: mockDataWithIDs{1, 2},
			validate: func(t *testing.T, data interface{}) {
				assert.Len(t, data, 2)
			},
		},
		{
			name: "nil data",
			data: nil,
			validate: func(t *testing.T, data interface{}) {
				assert.Nil(t, data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newFormatter(true, false)
			require.NoError(t, f.Success(tt.data, "ignored in JSON mode"))

			result := decode(t, out)
			assert.Equal(t, true, result["success"])
			tt.validate(t, result["data"])
		})
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data interface{}
		want string
	}{
		{name: "single ID", data: mockDataWithID{ID: 42}, want: "42\n"},
		{name: "ID list", data: mockDataWithIDs{3, 1, 2}, want: "3\n1\n2\n"},
		{name: "empty list", data: mockDataWithIDs{}, want: ""},
		{name: "no ID", data: mockDataWithoutID{Name: "x"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newFormatter(false, true)
			require.NoError(t, f.Success(tt.data, "Saved."))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	f, out, _ := newFormatter(false, false)

	require.NoError(t, f.Success(mockDataWithID{ID: 1}, "Student added."))
	assert.Equal(t, "Student added.\n", out.String())
}

func TestOutputFormatter_Error(t *testing.T) {
	t.Run("json with suggestion", func(t *testing.T) {
		f, out, errOut := newFormatter(true, false)
		require.NoError(t, f.ErrorWithSuggestion("NOT_FOUND", "Student ID not found.", "run ledger student list"))

		result := decode(t, out)
		assert.Equal(t, false, result["success"])
		errData := result["error"].(map[string]interface{})
		assert.Equal(t, "NOT_FOUND", errData["code"])
		assert.Equal(t, "Student ID not found.", errData["message"])
		assert.Equal(t, "run ledger student list", errData["suggestion"])
		assert.Empty(t, errOut.String())
	})

	t.Run("json without suggestion", func(t *testing.T) {
		f, out, _ := newFormatter(true, false)
		require.NoError(t, f.Error("STORAGE_ERROR", "disk full"))

		errData := decode(t, out)["error"].(map[string]interface{})
		_, ok := errData["suggestion"]
		assert.False(t, ok)
	})

	t.Run("human goes to stderr", func(t *testing.T) {
		f, out, errOut := newFormatter(false, false)
		require.NoError(t, f.ErrorWithSuggestion("STORAGE_ERROR", "disk full", "free some space"))

		assert.Empty(t, out.String())
		assert.Equal(t, "Error: disk full\nSuggestion: free some space\n", errOut.String())
	})
}
