package main

import "github.com/phtax/tax-calculator/internal/cli"

func main() {
	cli.Execute()
}
