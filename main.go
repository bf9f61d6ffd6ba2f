// main is the entry point for the repochurn CLI.
package main

import (
	"github.com/huangsam/repochurn/cmd"
	"github.com/huangsam/repochurn/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("repochurn failed", err)
	}
}
