// Package main provides the breakdown CLI for prompt generation from
// directive/layer parameter pairs.
package main

func main() {
	Execute()
}
