package main

import "textlens/internal/cli"

func main() {
	cli.Execute()
}
