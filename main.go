package main

import "javasmells/src/handler/cli"

func main() {
	cli.Run()
}
