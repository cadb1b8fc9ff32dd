package main

import "github.com/mthorne/vitals/cmd"

func main() {
	cmd.Execute()
}
