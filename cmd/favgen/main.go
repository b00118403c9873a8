package main

import "github.com/k1LoW/favgen/cmd"

func main() {
	cmd.Execute()
}
