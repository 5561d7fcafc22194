package main

import "github.com/TurnbullEngineering/water-flow-forces/cmd"

func main() {
	cmd.Execute()
}
