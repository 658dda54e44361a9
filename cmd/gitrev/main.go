package main

import cmd "github.com/rohmanhakim/gitrev/internal/cli"

func main() {
	cmd.Execute()
}
