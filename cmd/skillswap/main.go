package main

import (
	"fmt"
	"os"

	"github.com/skillswap-platform/skillswap/cmd/skillswap/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
