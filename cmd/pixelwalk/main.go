package main

import (
	"github.com/prathamesh424/pixelwalk-go/internal/cli"
)

func main() {
	cli.Execute()
}
