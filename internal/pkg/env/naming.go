package env

import (
	"github.com/iancoleman/strcase"

	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const Prefix = "ACE_"

type NamingConvention struct {
	prefix string
}

func NewNamingConvention(prefix string) *NamingConvention {
	return &NamingConvention{prefix: prefix}
}

// FlagToEnv converts flag name to ENV variable name
// for example "working-dir" -> "ACE_WORKING_DIR".
func (n *NamingConvention) FlagToEnv(flagName string) string {
	if len(flagName) == 0 {
		panic(errors.New("flag name cannot be empty"))
	}
	return n.prefix + strcase.ToScreamingSnake(flagName)
}

// Replace implements viper.StringReplacer.
func (n *NamingConvention) Replace(flagName string) string {
	return n.FlagToEnv(flagName)
}

func Files() []string {
	// https://github.com/bkeepers/dotenv#what-other-env-files-can-i-use
	return []string{
		".env.development.local",
		".env.local",
		".env.development",
		".env",
	}
}
