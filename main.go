package main

import "github.com/materialsintelligence/matscholar-go/cmd"

func main() {
	cmd.Execute()
}
