package main

import (
	"os"

	"github.com/abhisek/norlearn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
