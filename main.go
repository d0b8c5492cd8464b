package main

import "github.com/khanhnv2901/quickwins/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
