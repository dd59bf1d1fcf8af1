package main

import "github.com/ingestd/catalogsync/cmd"

func main() {
	cmd.Execute()
}
