package main

import "github.com/agrolab/farm-controller/cmd/farmctl/cmd"

func main() {
	cmd.Execute()
}
