package main

import "onyx/cmd"

func main() {
	cmd.Execute()
}
