package student

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/ledger/internal/menu"
	"github.com/thenoetrevino/ledger/internal/testutil"
	testutilcli "github.com/thenoetrevino/ledger/internal/testutil/cli"
)

const menuText = "\n===== Student Management Menu =====\n" +
	"1. Add Student\n" +
	"2. View All Students\n" +
	"3. Update Student\n" +
	"4. Delete Student\n" +
	"5. Exit\n" +
	"Enter choice: "

const tableHeader = "\nID         Name                 Department      Marks     \n"

func runSession(t *testing.T, env *testutilcli.TestEnv, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := RunMenu(context.Background(), env.App.StudentService, strings.NewReader(input), &out)
	return out.String(), err
}

func TestRunMenu_AddThenList(t *testing.T) {
	env := testutilcli.SetupCLITest(t)

	out, err := runSession(t, env, "1\nAlice\nCS\n88.5\n2\n5\n")
	require.NoError(t, err)

	want := menuText +
		"Enter name: Enter department: Enter marks: Student added.\n" +
		menuText +
		tableHeader +
		"1          Alice                CS              88.50     \n" +
		menuText +
		"Goodbye!\n"
	assert.Equal(t, want, out)
	assert.Equal(t, 1, testutil.CountRows(t, env.StudentDB, "Students"))
}

func TestRunMenu_TextFieldsKeptVerbatim(t *testing.T) {
	env := testutilcli.SetupCLITest(t)

	_, err := runSession(t, env, "1\n  Bob Smith \nMath\n 70 \n5\n")
	require.NoError(t, err)

	students, err := env.App.StudentService.ListStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "  Bob Smith ", students[0].Name)
	assert.Equal(t, 70.0, students[0].Marks)
}

func TestRunMenu_UpdateAndDelete(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOut  string
		wantRows int
	}{
		{
			name:     "update existing",
			input:    "3\n1\nAlice\nEE\n91\n5\n",
			wantOut:  "Student updated.",
			wantRows: 1,
		},
		{
			name:     "update missing",
			input:    "3\n42\nNobody\nNone\n0\n5\n",
			wantOut:  "Student ID not found.",
			wantRows: 1,
		},
		{
			name:     "delete existing",
			input:    "4\n1\n5\n",
			wantOut:  "Student deleted.",
			wantRows: 0,
		},
		{
			name:     "delete missing",
			input:    "4\n42\n5\n",
			wantOut:  "Student ID not found.",
			wantRows: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutilcli.SetupCLITest(t)
			testutil.CreateTestStudent(t, env.StudentDB, "Alice", "CS", 88.5)

			out, err := runSession(t, env, tt.input)
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)
			assert.Equal(t, tt.wantRows, testutil.CountRows(t, env.StudentDB, "Students"))
		})
	}
}

func TestRunMenu_UpdateChangesOnlyThatRow(t *testing.T) {
	env := testutilcli.SetupCLITest(t)
	testutil.CreateTestStudent(t, env.StudentDB, "Alice", "CS", 88.5)
	testutil.CreateTestStudent(t, env.StudentDB, "Bob", "Math", 70)

	_, err := runSession(t, env, "3\n2\nRobert\nPhysics\n75.25\n5\n")
	require.NoError(t, err)

	students, err := env.App.StudentService.ListStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Alice", students[0].Name)
	assert.Equal(t, "Robert", students[1].Name)
	assert.Equal(t, "Physics", students[1].Department)
	assert.Equal(t, 75.25, students[1].Marks)
}

func TestRunMenu_InvalidOption(t *testing.T) {
	env := testutilcli.SetupCLITest(t)

	out, err := runSession(t, env, "7\n5\n")
	require.NoError(t, err)
	assert.Equal(t, menuText+"Invalid option.\n"+menuText+"Goodbye!\n", out)
}

func TestRunMenu_EndOfInput(t *testing.T) {
	env := testutilcli.SetupCLITest(t)

	out, err := runSession(t, env, "1\nAlice\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "Goodbye!")
	assert.Equal(t, 0, testutil.CountRows(t, env.StudentDB, "Students"))
}

func TestRunMenu_MalformedNumberEndsRun(t *testing.T) {
	env := testutilcli.SetupCLITest(t)

	out, err := runSession(t, env, "1\nAlice\nCS\nlots\n5\n")
	require.Error(t, err)

	var parseErr *menu.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "lots", parseErr.Input)
	assert.NotContains(t, out, "Goodbye!")
	assert.Equal(t, 0, testutil.CountRows(t, env.StudentDB, "Students"))
}

func TestRunMenu_StorageFailure(t *testing.T) {
	env := testutilcli.SetupCLITest(t)
	require.NoError(t, env.StudentDB.Close())

	out, err := runSession(t, env, "2\n1\nAlice\nCS\n88.5\n5\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Error creating table: "))
	assert.Contains(t, out, "Error retrieving students: ")
	assert.Contains(t, out, tableHeader, "header is printed after a failed retrieval")
	assert.Contains(t, out, "Error adding student: ")
	assert.Contains(t, out, "Goodbye!")
}
