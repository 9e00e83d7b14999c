package main

import "github.com/mcoot/teamalloc/internal/cli"

func main() {
	cli.Execute()
}
