package product

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/thenoetrevino/ledger/internal/cli/styles"
	"github.com/thenoetrevino/ledger/internal/database"
	"github.com/thenoetrevino/ledger/internal/menu"
	productservice "github.com/thenoetrevino/ledger/internal/services/product"
)

// RunMenu bootstraps the Product table and runs the product menu until
// exit or end of input. All fields of an action are read before the
// database is touched.
func RunMenu(ctx context.Context, svc productservice.Service, in io.Reader, out io.Writer) error {
	s := &session{
		svc:    svc,
		out:    out,
		prompt: menu.NewPrompter(in, out),
	}

	if err := svc.EnsureSchema(ctx); err != nil {
		s.fail("Error creating table: ", err)
	}

	m := &menu.Menu{
		Title:        styles.TitleStyle.Render("====== Product Management Menu ======"),
		ChoicePrompt: "Enter choice (1-5): ",
		Items: []menu.Item{
			{Key: "1", Label: "Add Product", Action: s.add},
			{Key: "2", Label: "View Products", Action: s.list},
			{Key: "3", Label: "Update Product", Action: s.update},
			{Key: "4", Label: "Delete Product", Action: s.delete},
		},
		ExitKey:   "5",
		ExitLabel: "Exit",
		Farewell:  "Exiting.",
		Invalid:   styles.NoticeStyle.Render("Invalid option."),
		Out:       out,
		Prompt:    s.prompt,
	}
	return m.Run(ctx)
}

type session struct {
	svc    productservice.Service
	out    io.Writer
	prompt *menu.Prompter
}

func (s *session) add(ctx context.Context) error {
	name, err := s.prompt.Line("Enter product name: ")
	if err != nil {
		return err
	}
	price, err := s.prompt.Float("Enter product price: ")
	if err != nil {
		return err
	}
	quantity, err := s.prompt.Int("Enter product quantity: ")
	if err != nil {
		return err
	}

	_, err = s.svc.CreateProduct(ctx, productservice.CreateProductRequest{
		Name:     name,
		Price:    price,
		Quantity: quantity,
	})
	s.report(err, "Product added.", "Error adding product: ")
	return nil
}

func (s *session) list(ctx context.Context) error {
	products, err := s.svc.ListProducts(ctx)
	if err != nil {
		s.fail("Error reading products: ", err)
		return nil
	}
	return writeTable(s.out, products)
}

func (s *session) update(ctx context.Context) error {
	id, err := s.prompt.Int("Enter ProductID to update: ")
	if err != nil {
		return err
	}
	name, err := s.prompt.Line("Enter new product name: ")
	if err != nil {
		return err
	}
	price, err := s.prompt.Float("Enter new price: ")
	if err != nil {
		return err
	}
	quantity, err := s.prompt.Int("Enter new quantity: ")
	if err != nil {
		return err
	}

	err = s.svc.UpdateProduct(ctx, productservice.UpdateProductRequest{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: quantity,
	})
	s.report(err, "Product updated.", "Error updating product: ")
	return nil
}

func (s *session) delete(ctx context.Context) error {
	id, err := s.prompt.Int("Enter ProductID to delete: ")
	if err != nil {
		return err
	}

	err = s.svc.DeleteProduct(ctx, id)
	s.report(err, "Product deleted.", "Error deleting product: ")
	return nil
}

// report prints the outcome of a transactional write. Failures before
// the statement ran are database errors.
func (s *session) report(err error, done, failPrefix string) {
	switch {
	case err == nil:
		s.success(done)
	case errors.Is(err, productservice.ErrProductNotFound):
		fmt.Fprintln(s.out, styles.NoticeStyle.Render(notFoundMessage))
	case errors.Is(err, database.ErrConnection):
		s.fail("Database error: ", err)
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
