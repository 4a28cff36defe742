package dialog

import (
	"github.com/atomic-component-engine/ace/internal/pkg/git"
	"github.com/atomic-component-engine/ace/internal/pkg/options"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/prompt"
	initOp "github.com/atomic-component-engine/ace/pkg/lib/operation/project/init"
)

type InitFlags struct {
	Name         options.Value[string]
	Email        options.Value[string]
	PkgName      options.Value[string]
	MixinsDir    options.Value[string]
	Git          options.Value[bool]
	NameInHeader options.Value[bool]
}

// AskInitOptions asks for values not set by flags.
// The git author and the directory name are used as defaults.
func (p *Dialogs) AskInitOptions(f InitFlags, author git.Author, dirName string) initOp.Options {
	out := initOp.Options{}
	out.Name = p.askString(f.Name, &prompt.Question{Label: "Author name", Description: "The name is stored in the project config.", Default: author.Name})
	out.Email = p.askString(f.Email, &prompt.Question{Label: "Author email", Default: author.Email})
	out.PkgName = p.askString(f.PkgName, &prompt.Question{Label: "Package name", Default: dirName})
	out.MixinsDir = p.askString(f.MixinsDir, &prompt.Question{
		Label:       "Mixins directory",
		Description: `Directory with SASS mixins, relative to "src/global-scss", empty means the directory itself.`,
	})
	out.WithGit = p.askBool(f.Git, &prompt.Confirm{Label: "Create .gitignore file?", Default: true})
	out.NameInHeader = p.askBool(f.NameInHeader, &prompt.Confirm{Label: "Include the author in headers of created files?", Default: out.Name != ""})
	return out
}

func (p *Dialogs) askString(v options.Value[string], q *prompt.Question) string {
	if v.IsSet() {
		return v.Value
	}
	out, _ := p.Ask(q)
	return out
}

func (p *Dialogs) askBool(v options.Value[bool], c *prompt.Confirm) bool {
	if v.IsSet() {
		return v.Value
	}
	return p.Confirm(c)
}
