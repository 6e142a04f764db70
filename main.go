package main

import "github.com/kasuboski/shelfstats/cmd"

func main() {
	cmd.Execute()
}
