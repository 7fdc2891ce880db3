package main

import "github.com/alexiusacademia/gocombo/cmd"

func main() {
	cmd.Execute()
}
