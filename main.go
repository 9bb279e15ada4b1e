package main

import "github.com/neofinance/neofin/internal/cmd"

func main() {
	cmd.Execute()
}
