package main

import (
	"os"

	"github.com/matthewmueller/dtime/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
