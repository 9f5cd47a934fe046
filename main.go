package main

import "github.com/Estefano-cmd/impulsoApi/cmd"

func main() {
	cmd.Execute()
}
