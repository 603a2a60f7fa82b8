/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/dw/centidb/cmd/centidb/cmd"
)

func main() {
	cmd.Execute()
}
