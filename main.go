package main

import "github.com/jsphweid/tunesmith/cmd"

func main() {
	cmd.Execute()
}
