package main

import (
	"os"

	"github.com/sghaida/texteditor/cmd/texteditor/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
