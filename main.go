package main

import "it-inventory/cmd"

func main() {
	cmd.Execute()
}
