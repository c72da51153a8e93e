package main

import (
	"context"
	"os"

	"github.com/thenoetrevino/ledger/cmd"
)

func main() {
	os.Exit(cmd.Execute(context.Background()))
}
