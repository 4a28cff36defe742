package dependencies

import (
	"context"
	"sync"
)

type provider struct {
	base *baseScope

	projectOnce  sync.Once
	projectScope *projectScope
	projectErr   error
}

// ProviderRef allows to create commands before the provider exists, it is set when flags are parsed.
type ProviderRef struct {
	Provider
}

func (r *ProviderRef) Set(p Provider) {
	r.Provider = p
}

func NewProvider(ctx context.Context, cfg BaseConfig) (Provider, error) {
	base, err := newBaseScope(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &provider{base: base}, nil
}

func (p *provider) BaseScope() BaseScope {
	return p.base
}

// ProjectScope is created on the first call, the result is reused.
func (p *provider) ProjectScope(ctx context.Context) (ProjectScope, error) {
	p.projectOnce.Do(func() {
		p.projectScope, p.projectErr = newProjectScope(ctx, p.base)
	})
	if p.projectErr != nil {
		return nil, p.projectErr
	}
	return p.projectScope, nil
}
