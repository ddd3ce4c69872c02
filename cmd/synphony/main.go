// Command synphony runs the reader checks offline, over files on disk,
// without a database or server.
//
//	synphony words --settings en.json --samples texts/ --stage 2 --sort byFrequency
//	synphony check decodable --settings en.json --samples texts/ --stage 2 page1.html
//	synphony check leveled --settings en.json --level 1 page1.html page2.html
//	synphony sentences story.txt
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
