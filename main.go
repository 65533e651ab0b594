package main

import "media-orbit/cmd"

func main() {
	cmd.Execute()
}
