// Package template supplies the embedded descriptor templates.
package template

import (
	"embed"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// Store implements ports.TemplateStore over the embedded template bundle.
// Templates ship inside the binary so generation never depends on files
// lying around the machine it runs on.
type Store struct{}

var _ ports.TemplateStore = (*Store)(nil)

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load returns the template registered under name.
func (s *Store) Load(name string) (string, error) {
	data, err := embedded.ReadFile("templates/" + name + ".tmpl")
	if err != nil {
		return "", zerr.With(domain.ErrUnknownTemplate, "template", name)
	}
	return string(data), nil
}
