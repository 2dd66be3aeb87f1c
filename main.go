package main

import "issuelabeler/internal/cmd"

func main() {
	cmd.Execute()
}
