package main

import "github.com/cwygoda/passgen/cmd"

func main() {
	cmd.Execute()
}
