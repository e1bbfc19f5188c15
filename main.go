package main

import "shorts/cmd"

func main() {
	cmd.Execute()
}
