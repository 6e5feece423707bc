package main

import "github.com/elxecutor/gemini/cmd"

func main() {
	cmd.Execute()
}
