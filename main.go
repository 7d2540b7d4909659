package main

import "github.com/dome-hr/dome-backend/cmd"

func main() {
	cmd.Execute()
}
