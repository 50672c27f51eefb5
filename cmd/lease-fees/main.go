package main

import "github.com/iwvelando/lease-fees/internal/cli"

func main() {
	cli.Execute()
}
