package main

import (
	"os"

	"github.com/haloydev/instver/internal/instver"
)

func main() {
	os.Exit(instver.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
