package mcpserver

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"
	"text/template"

	"github.com/canyon289/ai-agent-basics/internal/domain"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/*.yml
var promptFS embed.FS

type promptFile struct {
	Prompts []promptDefinition `yaml:"prompts"`
}

type promptDefinition struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Arguments   []promptArgumentDef `yaml:"arguments"`
	Template    string              `yaml:"template"`
}

type promptArgumentDef struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
}

// PromptTemplate is a named prompt rendered from a text/template body.
type PromptTemplate struct {
	Descriptor domain.PromptDescriptor
	tmpl       *template.Template
}

// Render executes the template with args. Required arguments must be present.
func (p PromptTemplate) Render(args map[string]string) (string, error) {
	for _, arg := range p.Descriptor.Arguments {
		if !arg.Required {
			continue
		}
		if _, ok := args[arg.Name]; !ok {
			return "", domain.NewValidationErr(fmt.Sprintf("prompt %s: missing required argument %q", p.Descriptor.Name, arg.Name))
		}
	}
	if args == nil {
		args = map[string]string{}
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, args); err != nil {
		return "", fmt.Errorf("failed to render prompt %s: %w", p.Descriptor.Name, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// PromptCatalog holds the prompt templates served by the weather server.
type PromptCatalog struct {
	templates map[string]PromptTemplate
}

// LoadPromptCatalog parses every embedded prompts/*.yml file.
func LoadPromptCatalog() (PromptCatalog, error) {
	files, err := fs.Glob(promptFS, "prompts/*.yml")
	if err != nil {
		return PromptCatalog{}, err
	}

	catalog := PromptCatalog{templates: map[string]PromptTemplate{}}
	for _, name := range files {
		f, err := promptFS.Open(name)
		if err != nil {
			return PromptCatalog{}, err
		}
		err = catalog.load(f)
		_ = f.Close()
		if err != nil {
			return PromptCatalog{}, fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return catalog, nil
}

// ParsePromptCatalog parses a single YAML prompt document.
func ParsePromptCatalog(r io.Reader) (PromptCatalog, error) {
	catalog := PromptCatalog{templates: map[string]PromptTemplate{}}
	if err := catalog.load(r); err != nil {
		return PromptCatalog{}, err
	}
	return catalog, nil
}

func (c PromptCatalog) load(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file promptFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid prompt document: %w", err)
	}

	for _, def := range file.Prompts {
		if def.Name == "" {
			return errors.New("prompt name cannot be empty")
		}
		if _, exists := c.templates[def.Name]; exists {
			return fmt.Errorf("duplicate prompt %q", def.Name)
		}
		tmpl, err := template.New(def.Name).Option("missingkey=error").Parse(def.Template)
		if err != nil {
			return fmt.Errorf("invalid template for prompt %s: %w", def.Name, err)
		}

		descriptor := domain.PromptDescriptor{
			Name:        def.Name,
			Description: def.Description,
		}
		for _, arg := range def.Arguments {
			descriptor.Arguments = append(descriptor.Arguments, domain.PromptArgument{
				Name:        arg.Name,
				Description: arg.Description,
				Required:    arg.Required,
			})
		}
		c.templates[def.Name] = PromptTemplate{Descriptor: descriptor, tmpl: tmpl}
	}
	return nil
}

// Get returns the template registered under name.
func (c PromptCatalog) Get(name string) (PromptTemplate, bool) {
	p, ok := c.templates[name]
	return p, ok
}

// Templates returns every template sorted by name.
func (c PromptCatalog) Templates() []PromptTemplate {
	out := make([]PromptTemplate, 0, len(c.templates))
	for _, p := range c.templates {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Descriptor.Name < out[j].Descriptor.Name
	})
	return out
}
