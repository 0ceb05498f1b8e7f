package main

import "github.com/kozaktomas/face-embedder/cmd"

func main() {
	cmd.Execute()
}
