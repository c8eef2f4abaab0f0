package scene

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed scenes/*.yaml
var builtinFS embed.FS

// ErrUnknownScene is returned by Builtin for a name with no embedded scene.
var ErrUnknownScene = errors.New("unknown builtin scene")

// Builtin parses one of the embedded scenes: partner, final-cta or gallery.
func Builtin(name string) (*Description, error) {
	data, err := builtinFS.ReadFile(path.Join("scenes", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("builtin %s: %w", name, err)
	}
	return d, nil
}

// BuiltinNames lists the embedded scenes.
func BuiltinNames() []string {
	entries, _ := builtinFS.ReadDir("scenes")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Open loads a scene from a file when file is set, otherwise the named
// builtin.
func Open(file, builtin string) (*Description, error) {
	if file != "" {
		return LoadFile(file)
	}
	return Builtin(builtin)
}
