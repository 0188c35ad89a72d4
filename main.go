package main

import (
	"os"

	"github.com/thenoetrevino/sizerating/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
