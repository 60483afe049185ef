package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"taskboard/server"
)

func main() {
	commandFlag := flag.String("command", "start", "Command to run modules")
	flag.Parse()

	// Optional .env for local overrides; absence is fine.
	godotenv.Load()

	switch *commandFlag {
	case "start":
		server.StartServer()
	default:
		fmt.Println("Usage: go run main.go --command <command-name>")
		os.Exit(1)
	}
}
