package main

import "ftm/internal/cli"

func main() {
	cli.Execute()
}
