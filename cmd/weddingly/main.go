package main

import "weddingly/internal/cli"

func main() {
	cli.Execute()
}
