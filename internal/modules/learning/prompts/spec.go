package prompts

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Spec is the declaration format for a prompt. Text is a Go template over Input.
type Spec struct {
	Name       PromptName
	Version    int
	Text       string
	Validators []Validator
}

type Template struct {
	Name     PromptName
	Version  int
	Render   func(Input) string
	Validate Validator
}

var funcs = template.FuncMap{
	// grammar exercise types arrive snake_cased from clients
	"humanize": func(s string) string { return strings.ReplaceAll(strings.TrimSpace(s), "_", " ") },
	"trim":     strings.TrimSpace,
}

func MakeTemplate(s Spec) (Template, error) {
	if strings.TrimSpace(string(s.Name)) == "" {
		return Template{}, fmt.Errorf("missing prompt name")
	}
	if s.Version <= 0 {
		return Template{}, fmt.Errorf("invalid version for %s", s.Name)
	}
	t, err := template.New(string(s.Name)).Funcs(funcs).Option("missingkey=zero").Parse(s.Text)
	if err != nil {
		return Template{}, fmt.Errorf("%s template parse: %w", s.Name, err)
	}
	tt := Template{
		Name:    s.Name,
		Version: s.Version,
		Render: func(in Input) string {
			var b bytes.Buffer
			_ = t.Execute(&b, in)
			return strings.TrimSpace(b.String())
		},
	}
	if len(s.Validators) > 0 {
		tt.Validate = func(in Input) error {
			for _, v := range s.Validators {
				if v == nil {
					continue
				}
				if err := v(in); err != nil {
					return err
				}
			}
			return nil
		}
	}
	return tt, nil
}

var registry = map[PromptName]Template{}

func registerSpec(s Spec) {
	t, err := MakeTemplate(s)
	if err != nil {
		panic(err)
	}
	registry[t.Name] = t
}

// Prompt is a rendered instruction ready for a TextGenerator.
type Prompt struct {
	Name    PromptName
	Version int
	Text    string
}

func Build(name PromptName, in Input) (Prompt, error) {
	t, ok := registry[name]
	if !ok {
		return Prompt{}, fmt.Errorf("unknown prompt: %s", string(name))
	}
	if t.Validate != nil {
		if err := t.Validate(in); err != nil {
			return Prompt{}, fmt.Errorf("%s: %w", string(name), err)
		}
	}
	return Prompt{Name: t.Name, Version: t.Version, Text: t.Render(in)}, nil
}
