package cmd

import (
	"strings"

	"github.com/lithammer/dedent"
)

var usageTemplate = strings.TrimLeft(dedent.Dedent(`
	Usage:{{if .Runnable}}
	  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
	  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

	Aliases:
	  {{.NameAndAliases}}{{end}}{{if .HasExample}}

	Examples:
	{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

	Available Commands:
	{{cmds .}}{{end}}{{if and (not .HasParent) (index .Annotations "aliases")}}

	Aliases:
	{{index .Annotations "aliases"}}{{end}}{{if .HasAvailableLocalFlags}}

	Flags:
	{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

	Global Flags:
	{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`), "\n")
