package main

import "github.com/user/vidpreset/cmd"

func main() {
	cmd.Execute()
}
