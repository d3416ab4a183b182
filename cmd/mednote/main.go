package main

import "github.com/nalabook/mednote/internal/cli"

func main() {
	cli.Execute()
}
