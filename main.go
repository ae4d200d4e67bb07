package main

import (
	"github.com/go-imsto/imresize/cmd"
)

func main() {
	cmd.Main()
}
