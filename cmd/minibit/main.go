/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/sameteraslan/minibit/cmd/minibit/cmd"

func main() {
	cmd.Execute()
}
