package main

import "github.com/mateconpizza/bma/cmd"

func main() {
	cmd.Execute()
}
