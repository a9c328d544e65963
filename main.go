package main

import "github.com/graytonio/slackmoji/cmd"

func main() {
	cmd.Execute()
}
