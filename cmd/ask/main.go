package main

import "github.com/irl/ask/internal/cmd"

func main() {
	cmd.Execute()
}
