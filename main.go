package main

import "github.com/montrey/autojump/cmd"

func main() {
	cmd.Execute()
}
