package main

import "github.com/timzifer/wellcad/cmd/wellcadctl/cmd"

func main() {
	cmd.Execute()
}
