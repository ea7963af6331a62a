package main

import "github.com/wasabi0522/repostatus/cmd"

func main() {
	cmd.Execute()
}
