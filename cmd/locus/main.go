// Package main provides the locus CLI for checking and drawing circle scenes.
package main

func main() {
	Execute()
}
