package main

import "github.com/theirongolddev/vowbudget/cmd"

func main() {
	cmd.Execute()
}
