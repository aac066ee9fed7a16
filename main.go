package main

import "github.com/devfolio/devfolio/cmd"

func main() {
	cmd.Execute()
}
