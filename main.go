package main

import "github.com/mouse-blink/sensorgrid/cmd"

func main() {
	cmd.Execute()
}
