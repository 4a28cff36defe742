// Package git reads the author metadata from the git configuration.
package git

import (
	"strings"

	"github.com/umisama/go-regexpcache"
)

const (
	sectionPattern = `^\s*\[\s*([^\]]*?)\s*\]\s*$`
	paramPattern   = `^\s*([\w.\-]+)\s*=\s*(.*?)\s*$`
	commentPattern = `^\s*[;#].*$`
)

// Config is a parsed git config file, keys are in the "<section>.<param>" form, for example "user.email".
// Params outside of a section are stored without a prefix.
type Config map[string]string

// ParseConfig parses content of a ".gitconfig" file.
// A blank line ends the current section.
func ParseConfig(content string) Config {
	out := make(Config)
	section := ""
	for _, line := range regexpcache.MustCompile(`\r\n|\r|\n`).Split(content, -1) {
		switch {
		case regexpcache.MustCompile(commentPattern).MatchString(line):
			continue
		case regexpcache.MustCompile(paramPattern).MatchString(line):
			m := regexpcache.MustCompile(paramPattern).FindStringSubmatch(line)
			key := m[1]
			if section != "" {
				key = section + "." + key
			}
			out[key] = strings.Trim(m[2], `"`)
		case regexpcache.MustCompile(sectionPattern).MatchString(line):
			m := regexpcache.MustCompile(sectionPattern).FindStringSubmatch(line)
			section = m[1]
		case strings.TrimSpace(line) == "":
			section = ""
		}
	}
	return out
}

func (c Config) Get(key string) string {
	return c[key]
}
