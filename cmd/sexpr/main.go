package main

import (
	"os"

	"github.com/xiam/sexpr-parser/cmd/sexpr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
