package main

import (
	"os"

	"github.com/a11ykit/achecker-client/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
