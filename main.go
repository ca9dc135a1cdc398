package main

import "github.com/shelfstats/shelfstats-cli/cmd"

func main() {
	cmd.Execute()
}
