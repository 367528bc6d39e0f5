package main

import "github.com/jsphweid/harmonykit/cmd"

func main() {
	cmd.Execute()
}
