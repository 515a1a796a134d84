package assets

import (
	"errors"
)

// Resolver asks its loaders in order and returns the first stylesheet found.
// Only ErrStyleNotFound moves on to the next loader.
type Resolver struct {
	chain     []StyleLoader
	customDir string
}

// NewResolver builds the chain: the style directory when styleDir is set,
// then the built-in styles.
func NewResolver(styleDir string) (*Resolver, error) {
	r := &Resolver{}
	if styleDir != "" {
		dir, err := OpenDir(styleDir)
		if err != nil {
			return nil, err
		}
		r.chain = append(r.chain, dir)
		r.customDir = dir.Dir()
	}
	r.chain = append(r.chain, NewEmbeddedLoader())
	return r, nil
}

// CustomDir returns the absolute style directory, or "" when only the
// built-in styles are used.
func (r *Resolver) CustomDir() string {
	return r.customDir
}

// LoadStyle resolves name. An empty name selects DefaultStyle and NoStyle
// yields an empty stylesheet.
func (r *Resolver) LoadStyle(name string) (string, error) {
	switch name {
	case NoStyle:
		return "", nil
	case "":
		name = DefaultStyle
	}

	var err error
	for _, loader := range r.chain {
		var css string
		if css, err = loader.LoadStyle(name); !errors.Is(err, ErrStyleNotFound) {
			return css, err
		}
	}
	return "", err
}

var _ StyleLoader = (*Resolver)(nil)
