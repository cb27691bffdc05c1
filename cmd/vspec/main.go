package main

import "github.com/goplus/vspec/cmd/vspec/internal"

func main() {
	internal.Execute()
}
