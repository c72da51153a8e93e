package student

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/thenoetrevino/ledger/internal/cli/styles"
	"github.com/thenoetrevino/ledger/internal/menu"
	studentservice "github.com/thenoetrevino/ledger/internal/services/student"
)

// RunMenu bootstraps the Students table and runs the student menu until
// exit or end of input. Malformed numeric input ends the run with a
// *menu.ParseError.
func RunMenu(ctx context.Context, svc studentservice.Service, in io.Reader, out io.Writer) error {
	s := &session{
		svc:    svc,
		out:    out,
		prompt: menu.NewPrompter(in, out),
	}

	if err := svc.EnsureSchema(ctx); err != nil {
		s.fail("Error creating table: ", err)
	}

	m := &menu.Menu{
		Title:        styles.TitleStyle.Render("===== Student Management Menu ====="),
		ChoicePrompt: "Enter choice: ",
		Items: []menu.Item{
			{Key: "1", Label: "Add Student", Action: s.add},
			{Key: "2", Label: "View All Students", Action: s.list},
			{Key: "3", Label: "Update Student", Action: s.update},
			{Key: "4", Label: "Delete Student", Action: s.delete},
		},
		ExitKey:   "5",
		ExitLabel: "Exit",
		Farewell:  "Goodbye!",
		Invalid:   styles.NoticeStyle.Render("Invalid option."),
		Out:       out,
		Prompt:    s.prompt,
	}
	return m.Run(ctx)
}

type session struct {
	svc    studentservice.Service
	out    io.Writer
	prompt *menu.Prompter
}

func (s *session) add(ctx context.Context) error {
	name, err := s.prompt.Line("Enter name: ")
	if err != nil {
		return err
	}
	department, err := s.prompt.Line("Enter department: ")
	if err != nil {
		return err
	}
	marks, err := s.prompt.Float("Enter marks: ")
	if err != nil {
		return err
	}

	_, err = s.svc.CreateStudent(ctx, studentservice.CreateStudentRequest{
		Name:       name,
		Department: department,
		Marks:      marks,
	})
	if err != nil {
		s.fail("Error adding student: ", err)
		return nil
	}

	s.success("Student added.")
	return nil
}

func (s *session) list(ctx context.Context) error {
	students, err := s.svc.ListStudents(ctx)
	if err != nil {
		s.fail("Error retrieving students: ", err)
	}

	// The header is printed even when retrieval failed
	return writeTable(s.out, students)
}

func (s *session) update(ctx context.Context) error {
	id, err := s.prompt.Int("Enter student ID to update: ")
	if err != nil {
		return err
	}
	name, err := s.prompt.Line("Enter new name: ")
	if err != nil {
		return err
	}
	department, err := s.prompt.Line("Enter new department: ")
	if err != nil {
		return err
	}
	marks, err := s.prompt.Float("Enter new marks: ")
	if err != nil {
		return err
	}

	err = s.svc.UpdateStudent(ctx, studentservice.UpdateStudentRequest{
		ID:         id,
		Name:       name,
		Department: department,
		Marks:      marks,
	})
	s.report(err, "Student updated.", "Error updating student: ")
	return nil
}

func (s *session) delete(ctx context.Context) error {
	id, err := s.prompt.Int("Enter student ID to delete: ")
	if err != nil {
		return err
	}

	err = s.svc.DeleteStudent(ctx, id)
	s.report(err, "Student deleted.", "Error deleting student: ")
	return nil
}

// report prints the outcome of a keyed write
func (s *session) report(err error, done, failPrefix string) {
	switch {
	case err == nil:
		s.success(done)
	case errors.Is(err, studentservice.ErrStudentNotFound):
		fmt.Fprintln(s.out, styles.NoticeStyle.Render(notFoundMessage))
	default:
		s.fail(failPrefix, err)
	}
}

func (s *session) success(msg string) {
	fmt.Fprintln(s.out, styles.SuccessStyle.Render(msg))
}

func (s *session) fail(prefix string, err error) {
	fmt.Fprintln(s.out, styles.ErrorStyle.Render(prefix+err.Error()))
}
