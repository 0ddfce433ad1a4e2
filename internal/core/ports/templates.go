package ports

// TemplateCsProj is the well-known name of the csproj descriptor template.
const TemplateCsProj = "csproj"

// TemplateStore supplies named descriptor templates as opaque text.
//
//go:generate mockgen -source=templates.go -destination=mocks/mock_templates.go -package=mocks
type TemplateStore interface {
	// Load returns the template registered under name, or
	// domain.ErrUnknownTemplate when no such template exists.
	Load(name string) (string, error)
}
