package main

import (
	cmd "github.com/kerbaras/chaptercheck/cmd/chaptercheck"
)

func main() {
	cmd.Execute()
}
