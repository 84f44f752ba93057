package main

import "github.com/aptscout/prorate/cmd"

func main() {
	cmd.Execute()
}
