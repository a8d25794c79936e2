// Command krishi answers farming questions offline from the built-in
// knowledge base.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
