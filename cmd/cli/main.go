package main

import "github.com/gpakit/gpakit/pkg/cli"

func main() {
	cli.Execute()
}
