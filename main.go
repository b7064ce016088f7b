package main

import "github.com/openhire/openhire/cmd"

func main() {
	cmd.Execute()
}
