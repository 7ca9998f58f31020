package main

import "github.com/jsphweid/chromatic/cmd"

func main() {
	cmd.Execute()
}
