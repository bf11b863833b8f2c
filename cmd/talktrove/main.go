package main

import "github.com/Rashed1879/talk-trove-server/internal/cli/cmd"

func main() {
	cmd.Execute()
}
