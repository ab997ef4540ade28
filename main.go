package main

import "icaltodoist/cmd"

func main() {
	cmd.Run()
}
