package main

import "bas-manager/cmd"

func main() {
	cmd.Execute()
}
