package main

import "github.com/mcoot/minesweeper-go/internal/cli"

func main() {
	cli.Execute()
}
