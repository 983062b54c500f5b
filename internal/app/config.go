package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/videograbber/grab/pkg/shell"
	"gopkg.in/yaml.v3"
)

const defaultConfig = "videograbber.yaml"

// ConfigPath is the first config file from the command line, absolute.
var ConfigPath string

var configs [][]byte

// LoadConfig applies every config source in command line order over v,
// so later sources override earlier ones and v keeps its defaults for
// keys that no source sets.
func LoadConfig(v any) {
	for _, data := range configs {
		if err := yaml.Unmarshal(data, v); err != nil {
			Logger.Warn().Err(err).Msg("[app] read config")
		}
	}
}

// flagConfig collects repeated -config flags
type flagConfig []string

func (c *flagConfig) String() string {
	return strings.Join(*c, " ")
}

func (c *flagConfig) Set(value string) error {
	*c = append(*c, value)
	return nil
}

func initConfig(confs flagConfig) {
	if len(confs) == 0 {
		confs = flagConfig{defaultConfig}
	}
	configs, ConfigPath = readConfigs(confs)
}

// readConfigs turns -config values into YAML documents. A value is either
// inline YAML/JSON (`{...}`), a `section.key=value` override or a file path.
// Missing files are skipped, the first file path is returned anyway.
func readConfigs(sources []string) (docs [][]byte, path string) {
	for _, src := range sources {
		switch {
		case src == "":
			continue
		case src[0] == '{':
			docs = append(docs, []byte(src))
			continue
		}

		if doc := keyValueYAML(src); doc != nil {
			docs = append(docs, doc)
			continue
		}

		if path == "" {
			path = absPath(src)
		}

		data, err := os.ReadFile(src)
		if err != nil {
			continue
		}
		docs = append(docs, []byte(shell.ReplaceEnvVars(string(data))))
	}
	return
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// keyValueYAML converts `grabber.output.mmap=/tmp/a.raw` to
// `{grabber: {output: {mmap: /tmp/a.raw}}}`. At least one dot is required
// so plain file names are not taken for overrides.
func keyValueYAML(s string) []byte {
	key, value, ok := strings.Cut(s, "=")
	if !ok || !strings.Contains(key, ".") {
		return nil
	}

	keys := strings.Split(key, ".")

	var b strings.Builder
	for _, k := range keys {
		b.WriteString("{" + k + ": ")
	}
	b.WriteString(value)
	b.WriteString(strings.Repeat("}", len(keys)))

	return []byte(b.String())
}
