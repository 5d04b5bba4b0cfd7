package main

import "github.com/pageza/mixmaster/backend/internal/cli"

func main() {
	cli.Execute()
}
