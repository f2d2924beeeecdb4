package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	flags := flag.NewFlagSet("api", flag.ExitOnError)
	di := flags.String("di", "manual", "how dependencies are wired: manual | dig")
	_ = flags.Parse(os.Args[1:])

	switch *di {
	case "manual":
		startManual()
	case "dig":
		startWithDig()
	default:
		log.Fatalf("unknown -di %q", *di)
	}
}
