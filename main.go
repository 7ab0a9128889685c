package main

import "github.com/jsphweid/chordcompanion/cmd"

func main() {
	cmd.Execute()
}
