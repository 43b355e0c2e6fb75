package main

import "github.com/moneta-lab/go-finance-report/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
