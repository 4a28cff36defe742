package dialog

import (
	"strings"

	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/prompt"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

// AskComponentType parses the argument, or asks the user, if the argument is empty.
func (p *Dialogs) AskComponentType(arg string, types []model.ComponentType) (model.ComponentType, error) {
	if arg != "" {
		return model.ParseComponentType(arg)
	}

	opts := make([]string, 0, len(types))
	for _, t := range types {
		opts = append(opts, t.String())
	}
	if v, ok := p.Select(&prompt.Select{Label: "Component type", Options: opts}); ok {
		return model.ParseComponentType(v)
	}
	return "", errors.New(`please specify component type`)
}

// AskComponentName returns the argument, or asks the user, if the argument is empty.
func (p *Dialogs) AskComponentName(arg string, t model.ComponentType) (string, error) {
	if v := strings.TrimSpace(arg); v != "" {
		return v, nil
	}

	if v, ok := p.Ask(&prompt.Question{
		Label:       "Name",
		Description: "Enter name of the " + t.String() + ".",
		Validator:   prompt.ValueRequired,
	}); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), nil
	}
	return "", errors.Errorf(`please specify %s name`, t)
}

// SelectComponent parses the argument as a component reference, or lets the user select one of all components.
func (p *Dialogs) SelectComponent(arg string, all []model.ComponentKey) (model.ComponentKey, error) {
	if arg != "" {
		return model.ParseComponentRef(arg)
	}
	if len(all) == 0 {
		return model.ComponentKey{}, errors.New(`no component found in the project`)
	}

	opts := make([]string, 0, len(all))
	for _, key := range all {
		opts = append(opts, key.String())
	}
	if v, ok := p.Select(&prompt.Select{Label: "Component", Options: opts}); ok {
		return model.ParseComponentRef(v)
	}
	return model.ComponentKey{}, errors.New(`please specify component, for example "molecules/button"`)
}

// SelectTemplate returns the argument, or lets the user select one of templates.
func (p *Dialogs) SelectTemplate(arg string, templates []model.ComponentKey) (string, error) {
	if v := strings.TrimSpace(arg); v != "" {
		return v, nil
	}
	if len(templates) == 0 {
		return "", errors.New(`no template found, please create a template first`)
	}

	opts := make([]string, 0, len(templates))
	for _, key := range templates {
		opts = append(opts, key.Name)
	}
	if v, ok := p.Select(&prompt.Select{Label: "Template", Description: "The page extends the template.", Options: opts}); ok {
		return v, nil
	}
	return "", errors.New(`please specify template`)
}

// AskDependencyKind parses the argument, or asks the user, if the argument is empty.
func (p *Dialogs) AskDependencyKind(arg string) (model.DependencyKind, error) {
	if arg != "" {
		return model.ParseDependencyKind(arg)
	}

	opts := []string{model.KindComponent.String(), model.KindJS.String(), model.KindSass.String()}
	if v, ok := p.Select(&prompt.Select{Label: "Dependency kind", Options: opts}); ok {
		return model.ParseDependencyKind(v)
	}
	return "", errors.New(`please specify dependency kind`)
}
