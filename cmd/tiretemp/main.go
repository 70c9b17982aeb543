package main

import "tiretemp/internal/cli"

func main() {
	cli.Execute()
}
