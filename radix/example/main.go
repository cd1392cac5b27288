package main

import (
	"fmt"
	"os"

	"github.com/aglyzov/go-hints/radix"
)

func main() {
	tree := radix.New()
	tree.InsertAll([]string{
		"cat",
		"car",
		"carpet",
		"cactus",
		"java",
		"javascript",
		"internet",
	})

	tree.Dump(os.Stdout)

	println("------")

	for _, query := range []string{"ca", "car", "j", "internet", "crr"} {
		fmt.Printf("%s -> %q\n", query, tree.Search(query))
	}
}
