// Package main is the entry point for the minewatch CLI.
package main

import (
	"log"
	"os"

	"github.com/minewatch-io/minewatch/internal/cli"
)

func main() {
	log.SetPrefix("[minewatch] ")
	log.SetFlags(log.Ldate | log.Ltime)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
