// Package template loads the prompt template used to turn transcripts
// into case notes. A template file starts with a header block between
// "---" delimiter lines holding the system role and content, followed by
// the user prompt body containing the transcript placeholder:
//
//	---
//	role: system
//	content: You are a helpful assistant that summarizes transcripts.
//	---
//	Write structured case notes for the following transcript:
//
//	{{TRANSCRIPT}}
package template

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Placeholder marks where the transcript is substituted into the body.
const Placeholder = "{{TRANSCRIPT}}"

const delimiter = "---"

// Template is a parsed prompt template.
type Template struct {
	Role   string
	System string
	Body   string
}

// ParseError reports a malformed template file. A bad template is a
// configuration error; there is no recovery.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse template %s: %s", e.Path, e.Reason)
}

// Load reads and parses the template file at path.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return Parse(path, string(data))
}

// Parse parses template content. The path is used for error reporting only.
func Parse(path, content string) (*Template, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != delimiter {
		return nil, &ParseError{Path: path, Reason: "missing opening --- delimiter"}
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, &ParseError{Path: path, Reason: "header is not terminated by a --- delimiter"}
	}

	var header struct {
		Role    string `yaml:"role"`
		Content string `yaml:"content"`
	}
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &header); err != nil {
		return nil, &ParseError{Path: path, Reason: fmt.Sprintf("invalid header: %v", err)}
	}
	if strings.TrimSpace(header.Role) == "" {
		return nil, &ParseError{Path: path, Reason: "header is missing a role field"}
	}
	if strings.TrimSpace(header.Content) == "" {
		return nil, &ParseError{Path: path, Reason: "header is missing a content field"}
	}

	body := strings.TrimLeft(strings.Join(lines[end+1:], "\n"), "\n")
	switch strings.Count(body, Placeholder) {
	case 1:
	case 0:
		return nil, &ParseError{Path: path, Reason: "body is missing the " + Placeholder + " placeholder"}
	default:
		return nil, &ParseError{Path: path, Reason: "body must contain exactly one " + Placeholder + " placeholder"}
	}

	return &Template{
		Role:   strings.TrimSpace(header.Role),
		System: strings.TrimSpace(header.Content),
		Body:   body,
	}, nil
}

// Render substitutes the transcript into the template body. The single
// placeholder occurrence is replaced; everything else is left untouched.
func (t *Template) Render(transcript string) string {
	return strings.Replace(t.Body, Placeholder, transcript, 1)
}
