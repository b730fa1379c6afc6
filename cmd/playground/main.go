package main

import (
	"crypto/sha256"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yosssi/gohtml"

	"github.com/kilianc/h2x/internal/h2x/outfile"
	"github.com/kilianc/h2x/pkg/h2x"
)

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: playground [flags]")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Watches ./playground/page.html and reconverts it on changes.")
		_, _ = fmt.Fprintln(os.Stderr, "Writes page.jsx and a formatted page.fmt.html next to it.")
	}
	interval := flag.Duration("interval", 300*time.Millisecond, "watch polling interval")
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := watchAndConvert(*interval); err != nil {
		fatal(err)
	}
}

func watchAndConvert(interval time.Duration) error {
	root, err := findModuleRoot(".")
	if err != nil {
		return err
	}
	target := filepath.Join(root, "playground", "page.html")

	var lastHash [32]byte
	var have bool

	for {
		src, err := os.ReadFile(target)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "playground: read error: %v\n", err)
			time.Sleep(interval)
			continue
		}
		h := sha256.Sum256(src)
		if !have || h != lastHash {
			lastHash = h
			have = true

			if err := convert(target, src); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "playground: convert failed: %v\n", err)
			}
		}

		time.Sleep(interval)
	}
}

func convert(target string, src []byte) error {
	out, err := h2x.ConvertString(string(src))
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(target, ".html")
	if out != "" {
		out += "\n"
	}
	if err := outfile.WriteConvertedFile(base+".jsx", []byte(out)); err != nil {
		return err
	}
	// A normalized copy of the input makes the two sides easier to compare.
	formatted := gohtml.Format(string(src))
	if err := outfile.WriteConvertedFile(base+".fmt.html", []byte(formatted+"\n")); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "playground: wrote %s.jsx\n", base)
	return nil
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func findModuleRoot(start string) (string, error) {
	d, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(d, "go.mod")); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", fmt.Errorf("could not find go.mod above %s", start)
		}
		d = parent
	}
}
