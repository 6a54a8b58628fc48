package fixture

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// OutputPath derives the expected-output path for an input path by replacing
// every "sample_input" with "sample_output".
func OutputPath(inputPath string) string {
	return strings.ReplaceAll(inputPath, inputToken, outputToken)
}

// LoadFile parses the cases in path and attaches expectations from the
// paired output file when it exists. Surplus expectations are ignored.
func LoadFile(path string) (File, error) {
	in, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("fixture: open input %q: %w", path, err)
	}
	defer in.Close()

	cases, err := ParseCases(in)
	if err != nil {
		return File{}, fmt.Errorf("fixture: parse %q: %w", path, err)
	}

	outPath := OutputPath(path)
	if outPath != path {
		out, err := os.Open(outPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// no expectations
		case err != nil:
			return File{}, fmt.Errorf("fixture: open output %q: %w", outPath, err)
		default:
			defer out.Close()
			expected, err := ParseExpected(out)
			if err != nil {
				return File{}, fmt.Errorf("fixture: parse %q: %w", outPath, err)
			}
			for i := 0; i < len(cases) && i < len(expected); i++ {
				cases[i].Expected = expected[i]
				cases[i].HasExpected = true
			}
		}
	}

	return File{Path: path, Cases: cases}, nil
}

// LoadDir loads every regular file in dir whose name starts with
// "sample_input", in name order.
func LoadDir(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fixture: read dir %q: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasPrefix(e.Name(), inputToken) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	files := make([]File, 0, len(names))
	for _, name := range names {
		f, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, nil
}
