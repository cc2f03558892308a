package main

import (
	"log"

	"yonder-parse/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
