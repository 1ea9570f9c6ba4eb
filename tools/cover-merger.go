//go:build tools

// cover-merger combines the coverage profiles of the unit and integration test runs
// into one profile. A block reported by several profiles is written once, with the
// highest count for "set" mode and the summed count otherwise.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

func main() {
	out := flag.String("o", "coverage.out", "merged profile path")
	pattern := flag.String("glob", "*.cover", "input profiles")
	flag.Parse()

	files, err := filepath.Glob(*pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to find profiles: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "warning: no profiles found")
		return
	}

	readers := make([]io.Reader, 0, len(files))
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", file, err)
			os.Exit(1)
		}
		defer f.Close()

		readers = append(readers, f)
	}

	outFile, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", *out, err)
		os.Exit(1)
	}
	defer outFile.Close()

	if err := merge(outFile, readers...); err != nil {
		fmt.Fprintf(os.Stderr, "failed to merge profiles: %v\n", err)
		os.Exit(1)
	}
}

func merge(w io.Writer, profiles ...io.Reader) error {
	var mode string
	counts := make(map[string]int64)

	for i, p := range profiles {
		sc := bufio.NewScanner(p)
		first := true

		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}

			if first {
				first = false

				m, ok := strings.CutPrefix(line, "mode: ")
				if !ok {
					return fmt.Errorf("profile %d: missing mode line", i)
				}
				if mode != "" && m != mode {
					return fmt.Errorf("profile %d: mode %q differs from %q", i, m, mode)
				}
				mode = m

				continue
			}

			idx := strings.LastIndexByte(line, ' ')
			if idx < 0 {
				return fmt.Errorf("profile %d: malformed line %q", i, line)
			}

			n, err := strconv.ParseInt(line[idx+1:], 10, 64)
			if err != nil {
				return fmt.Errorf("profile %d: malformed count in %q: %w", i, line, err)
			}

			block := line[:idx]
			if mode == "set" {
				counts[block] = max(counts[block], n)
			} else {
				counts[block] += n
			}
		}

		if err := sc.Err(); err != nil {
			return fmt.Errorf("profile %d: %w", i, err)
		}
	}

	if mode == "" {
		mode = "set"
	}

	blocks := make([]string, 0, len(counts))
	for b := range counts {
		blocks = append(blocks, b)
	}
	sort.Strings(blocks)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "mode: %s\n", mode)
	for _, b := range blocks {
		fmt.Fprintf(bw, "%s %d\n", b, counts[b])
	}

	return bw.Flush()
}
