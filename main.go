package main

import "github.com/jsphweid/goscales/cmd"

func main() {
	cmd.Execute()
}
