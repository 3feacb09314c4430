package main

import "indexgen/cmd"

func main() {
	cmd.Execute()
}
