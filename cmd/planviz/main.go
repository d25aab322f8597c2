package main

// version is stamped at build time via -ldflags.
var version = "0.1.0"

func main() {
	Execute()
}
