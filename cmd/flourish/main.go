// Command flourish inspects and plays flourish documents.
//
//	flourish timeline doc.yaml [doc.toml ...]
//	flourish simulate -script steps.json [-fps 60] doc.yaml
//	flourish preview [-fps 30] doc.toml
package main

import (
	"fmt"
	"log"
	"os"
)

const usage = `usage:
  flourish timeline <document>...
  flourish simulate [-debug] [-fps n] -script <script.json> <document>
  flourish preview [-fps n] <document>
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("flourish: ")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "timeline":
		err = runTimeline(os.Args[2:], os.Stdout)
	case "simulate":
		err = runSimulate(os.Args[2:], os.Stdout)
	case "preview":
		err = runPreview(os.Args[2:])
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}
