package main

import (
	"fmt"

	"github.com/rl-demos/taxi-v3-demo/cmd"
)

// main entry point to the demo commands
func main() {
	rootCommand := cmd.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
