package main

import "github.com/dradle/my-bike-rent/cmd"

func main() {
	cmd.Execute()
}
