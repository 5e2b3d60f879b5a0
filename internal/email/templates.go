package email

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"
)

// Built-in outreach template names.
const (
	TemplateInitialContact    = "initial-contact"
	TemplateFollowUp          = "follow-up"
	TemplateApplicationStatus = "application-status"
)

var builtinTemplates = map[string]string{
	TemplateInitialContact: `Dear Professor {{.ProfessorName}},

I am {{.StudentName}}, a student with a background in {{.Background}}. I am writing to express my interest in pursuing a PhD under your supervision at {{.SchoolName}}.

I am particularly interested in your research on {{.ResearchArea}}. {{.CustomMessage}}

I have attached my CV for your consideration. I would be grateful for the opportunity to discuss how my research interests and experience could fit within your group.

Thank you for your time and consideration.

Best regards,
{{.StudentName}}
{{.ContactInfo}}`,

	TemplateFollowUp: `Dear Professor {{.ProfessorName}},

I hope this email finds you well. I am writing to follow up on my previous email regarding my interest in joining your research group as a PhD student.

{{.CustomMessage}}

Thank you again for your time and consideration.

Best regards,
{{.StudentName}}
{{.ContactInfo}}`,

	TemplateApplicationStatus: `Dear Professor {{.ProfessorName}},

I hope this email finds you well. I recently submitted my application to the {{.ProgramName}} program at {{.SchoolName}}, and I wanted to inform you of my interest in working with you.

{{.CustomMessage}}

Thank you for your time and consideration.

Best regards,
{{.StudentName}}
{{.ContactInfo}}`,
}

// TemplateManager implements TemplateRenderer. The built-in outreach
// templates are registered at construction; LoadTemplates can override them
// from disk.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	for name, body := range builtinTemplates {
		// Built-ins are compile-checked by tests; a parse error here is a bug.
		if err := tm.AddTemplate(name, body); err != nil {
			panic(fmt.Sprintf("builtin email template %q: %v", name, err))
		}
	}

	return tm
}

// Render executes a named template with data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

// AddTemplate registers (or replaces) a template.
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

// LoadTemplates loads .tmpl files from a directory, keyed by base name.
func (tm *TemplateManager) LoadTemplates(dirPath string) error {
	return filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		templateName := strings.TrimSuffix(filepath.Base(path), ".tmpl")
		if err := tm.AddTemplate(templateName, string(content)); err != nil {
			return fmt.Errorf("failed to add template %s: %w", templateName, err)
		}

		return nil
	})
}
