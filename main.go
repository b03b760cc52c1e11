package main

import "github.com/Tiliavir/timelog/cmd"

func main() {
	cmd.Execute()
}
