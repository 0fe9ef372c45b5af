package main

import "github.com/its-serah/SheRages/cmd/sr/root"

func main() {
	root.Execute()
}
