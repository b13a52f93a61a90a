package main

import (
	"github.com/qubicgame/qubic/internal/cli"
)

func main() {
	cli.Execute()
}
