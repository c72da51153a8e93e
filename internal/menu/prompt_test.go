package menu

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  Alice Smith  \nCS\r\n"), &out)

	name, err := p.Line("Enter name: ")
	require.NoError(t, err)
	assert.Equal(t, "  Alice Smith  ", name, "text fields are kept verbatim")

	dept, err := p.Line("Enter department: ")
	require.NoError(t, err)
	assert.Equal(t, "CS", dept)

	_, err = p.Line("Enter marks: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Enter name: Enter department: Enter marks: ", out.String())
}

func TestPrompterLongLine(t *testing.T) {
	long := strings.Repeat("a", 70000)
	p := NewPrompter(strings.NewReader(long+"\nnext\n"), io.Discard)

	got, err := p.Line("Enter name: ")
	require.NoError(t, err)
	assert.Len(t, got, 70000)

	got, err = p.Line("Enter department: ")
	require.NoError(t, err)
	assert.Equal(t, "next", got)
}

func TestPrompterLastLineWithoutNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("1\r\nCS"), io.Discard)

	n, err := p.Int("Enter your choice: ")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := p.Line("Enter department: ")
	require.NoError(t, err)
	assert.Equal(t, "CS", got)

	_, err = p.Line("Enter department: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompterNumbers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		isInt   bool
		want    float64
		wantErr error
	}{
		{name: "float", input: "88.5\n", want: 88.5},
		{name: "float with spaces", input: " 9.99 \n", want: 9.99},
		{name: "float garbage", input: "ninety\n", wantErr: strconv.ErrSyntax},
		{name: "int", input: "10\n", isInt: true, want: 10},
		{name: "int negative", input: "-2147483648\n", isInt: true, want: -2147483648},
		{name: "int rejects decimals", input: "1.5\n", isInt: true, wantErr: strconv.ErrSyntax},
		{name: "int empty", input: "\n", isInt: true, wantErr: strconv.ErrSyntax},
		{name: "int above 32 bits", input: "3000000000\n", isInt: true, wantErr: strconv.ErrRange},
		{name: "int below 32 bits", input: "-2147483649\n", isInt: true, wantErr: strconv.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrompter(strings.NewReader(tt.input), io.Discard)

			var got float64
			var err error
			if tt.isInt {
				var n int
				n, err = p.Int("> ")
				got = float64(n)
			} else {
				got, err = p.Float("> ")
			}

			if tt.wantErr != nil {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
