package main

import "github.com/mj1618/wsicons/cmd"

func main() {
	cmd.Execute()
}
