// Command robotfmt checks robot files and converts them between plain JSON
// and zstd-compressed JSON.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/CindyYangCS/CircuitCider/robots"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fset := flag.NewFlagSet("robotfmt", flag.ContinueOnError)
	out := fset.String("o", "", "write the loaded robot to this path (.zst compresses)")
	if err := fset.Parse(args); err != nil {
		return err
	}
	paths := fset.Args()
	if len(paths) == 0 {
		return errors.New("usage: robotfmt [-o out] file...")
	}
	if *out != "" && len(paths) != 1 {
		return errors.New("robotfmt: -o takes exactly one input file")
	}

	var failed error
	for _, p := range paths {
		r, err := robots.Load(p)
		if err != nil {
			failed = errors.Join(failed, err)
			continue
		}
		name := r.Name
		if name == "" {
			name = "unnamed"
		}
		fmt.Fprintf(stdout, "%s: %d parts (%s)\n", p, len(r.Parts), name)

		if *out != "" {
			if err := robots.Save(*out, r); err != nil {
				failed = errors.Join(failed, err)
				continue
			}
			fmt.Fprintf(stdout, "wrote %s\n", *out)
		}
	}
	return failed
}
