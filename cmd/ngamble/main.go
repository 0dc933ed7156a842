package main

import (
	"github.com/mcoot/numbergamble-go/internal/cli"
)

func main() {
	cli.Execute()
}
