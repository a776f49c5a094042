package main

import "github.com/flodolo/gecko-it-qa/internal/cli"

func main() {
	cli.Execute()
}
