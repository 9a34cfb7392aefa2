package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/sbilibin2017/product-catalog/internal/client"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		// Failures surface as one-line transient messages, no retries
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() error {
	fmt.Fprintln(os.Stderr, `Usage: catalog-client <command> [flags]

Commands:
  register  Create a user account
  login     Authenticate and print a session token
  list      List all products, newest first
  create    Create a product
  update    Update a product by id
  delete    Delete a product by id`)
	return fmt.Errorf("missing or unknown command")
}

func run(args []string) error {
	if len(args) == 0 {
		return usage()
	}

	ctx := context.Background()

	switch args[0] {
	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		addr := fs.String("addr", defaultAddr(), "Backend base URL")
		username := fs.String("username", "", "Username")
		email := fs.String("email", "", "Email")
		fs.Parse(args[1:])

		password, err := readPassword()
		if err != nil {
			return err
		}

		c := client.New(*addr)
		user, err := c.Register(ctx, *username, string(password), *email)
		if err != nil {
			return err
		}
		fmt.Printf("registered %s (%s)\n", user.Username, user.UserID)
		return nil

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		addr := fs.String("addr", defaultAddr(), "Backend base URL")
		email := fs.String("email", "", "Email")
		fs.Parse(args[1:])

		password, err := readPassword()
		if err != nil {
			return err
		}

		c := client.New(*addr)
		user, token, err := c.Login(ctx, *email, string(password))
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s\n", user.Username)
		fmt.Println(token)
		return nil

	case "list":
		fs := flag.NewFlagSet("list", flag.ExitOnError)
		addr := fs.String("addr", defaultAddr(), "Backend base URL")
		fs.Parse(args[1:])

		c := client.New(*addr)
		products, err := c.ListProducts(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tDESCRIPTION\tCREATED")
		for _, p := range products {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\n",
				p.ProductID, p.Name, p.Price, p.Description, p.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return w.Flush()

	case "create":
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		addr := fs.String("addr", defaultAddr(), "Backend base URL")
		token := fs.String("token", os.Getenv("CATALOG_TOKEN"), "Session token")
		name := fs.String("name", "", "Product name")
		price := fs.Float64("price", 0, "Product price")
		description := fs.String("description", "", "Product description")
		fs.Parse(args[1:])

		c := client.New(*addr, client.WithToken(*token))
		product, err := c.CreateProduct(ctx, *name, *price, *description)
		if err != nil {
			return err
		}
		fmt.Printf("created %s (%s)\n", product.Name, product.ProductID)
		return nil

	case "update":
		fs := flag.NewFlagSet("update", flag.ExitOnError)
		addr := fs.String("addr", defaultAddr(), "Backend base URL")
		token := fs.String("token", os.Getenv("CATALOG_TOKEN"), "Session token")
		id := fs.String("id", "", "Product id")
		name := fs.String("name", "", "Product name")
		price := fs.Float64("price", 0, "Product price")
		description := fs.String("description", "", "Product description")
		fs.Parse(args[1:])

		productID, err := uuid.Parse(*id)
		if err != nil {
			return fmt.Errorf("invalid product id %q", *id)
		}

		c := client.New(*addr, client.WithToken(*token))
		product, err := c.UpdateProduct(ctx, productID, *name, *price, *description)
		if err != nil {
			return err
		}
		fmt.Printf("updated %s (%s)\n", product.Name, product.ProductID)
		return nil

	case "delete":
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		addr := fs.String("addr", defaultAddr(), "Backend base URL")
		token := fs.String("token", os.Getenv("CATALOG_TOKEN"), "Session token")
		id := fs.String("id", "", "Product id")
		fs.Parse(args[1:])

		productID, err := uuid.Parse(*id)
		if err != nil {
			return fmt.Errorf("invalid product id %q", *id)
		}

		c := client.New(*addr, client.WithToken(*token))
		if err := c.DeleteProduct(ctx, productID); err != nil {
			return err
		}
		fmt.Println("deleted", productID)
		return nil

	default:
		return usage()
	}
}

func defaultAddr() string {
	if addr := os.Getenv("CATALOG_ADDR"); addr != "" {
		return addr
	}
	return "http://localhost:8080"
}

// readPassword reads a password from the terminal without echo.
func readPassword() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Enter password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	return password, nil
}
