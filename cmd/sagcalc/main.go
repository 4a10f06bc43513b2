package main

import "github.com/gridclear/sagcalc/internal/cli"

func main() {
	cli.Execute()
}
