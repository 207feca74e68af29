package main

import "issuemd/cmd/issuemd/cmd"

func main() {
	cmd.Execute()
}
