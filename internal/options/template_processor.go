/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package options

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/orien/simplecdk/internal/logging"
	"go.uber.org/zap"
)

// TemplateData is the data available to context value templates
type TemplateData struct {
	DeploymentName string
	Environment    Environment
	Tags           map[string]string
}

// ContextTemplateProcessor renders context string values as Go templates with
// Sprig functions
type ContextTemplateProcessor struct{}

// NewContextTemplateProcessor creates a new context template processor
func NewContextTemplateProcessor() *ContextTemplateProcessor {
	return &ContextTemplateProcessor{}
}

// Process renders a single template string
func (tp *ContextTemplateProcessor) Process(content string, data TemplateData) (string, error) {
	tmpl, err := template.New("context").
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		Parse(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// ExpandContextTemplates renders every string in the context, at any depth,
// that contains a template action. Run it after the environment and config
// files have been resolved.
func ExpandContextTemplates(opts Options) (Options, error) {
	result := opts.Clone()
	if len(result.Context) == 0 {
		return result, nil
	}

	data := TemplateData{
		DeploymentName: result.DeploymentName,
		Environment:    result.Environment,
		Tags:           result.Tags,
	}
	tp := NewContextTemplateProcessor()

	for key, value := range result.Context {
		expanded, err := expandValue(tp, value, data)
		if err != nil {
			return Options{}, fmt.Errorf("context key '%s': %w", key, err)
		}
		result.Context[key] = expanded
	}

	logging.Logger().Debug("context templates expanded", zap.Any("context", result.Context))
	return result, nil
}

func expandValue(tp *ContextTemplateProcessor, value any, data TemplateData) (any, error) {
	switch v := value.(type) {
	case string:
		if !strings.Contains(v, "{{") {
			return v, nil
		}
		return tp.Process(v, data)
	case map[string]any:
		for key, item := range v {
			expanded, err := expandValue(tp, item, data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			v[key] = expanded
		}
		return v, nil
	case []any:
		for i, item := range v {
			expanded, err := expandValue(tp, item, data)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			v[i] = expanded
		}
		return v, nil
	case []map[string]any:
		for i, item := range v {
			expanded, err := expandValue(tp, item, data)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			v[i] = expanded.(map[string]any)
		}
		return v, nil
	default:
		return value, nil
	}
}
