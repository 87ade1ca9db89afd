package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/longkey1/notiongo/cmd"
)

func main() {
	// A local .env is optional; missing files are fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
