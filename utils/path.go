package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultSuffix is appended to the input name to form the default output name.
const DefaultSuffix = "_mesh"

// OutputPath derives a non-colliding output path from the input: the input
// name without its extension, plus suffix and ext. When that file exists,
// -1, -2, ... are appended until a free name is found. A name is also skipped
// when taken reports it as already claimed; taken may be nil. URL inputs
// resolve to the current directory.
func OutputPath(input, suffix, ext string, taken func(string) bool) (string, error) {
	var dir, base string
	if IsURL(input) {
		dir, base = ".", path.Base(strings.SplitN(input, "?", 2)[0])
	} else {
		dir, base = filepath.Split(input)
	}
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." || name == "/" {
		name = "image"
	}

	candidate := filepath.Join(dir, name+suffix+ext)
	for i := 1; ; i++ {
		_, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			if taken == nil || !taken(candidate) {
				return candidate, nil
			}
		} else if err != nil {
			return "", err
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s%s-%d%s", name, suffix, i, ext))
	}
}
