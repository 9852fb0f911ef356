package main

import "github.com/OpenTraceLab/OpenTraceLA/cmd/otla/cmd"

func main() {
	cmd.Execute()
}
