// Command hanoi solves the Tower of Hanoi with a memoryless move rule:
// every move is decided from the current disk arrangement alone, with no
// recursion and no record of previous moves.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
