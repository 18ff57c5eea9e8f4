/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package options

import (
	"fmt"
	"sort"
)

// Names of the built-in processors
const (
	ProcessorEnv            = "env"
	ProcessorDefaultStack   = "default-stack"
	ProcessorStackNames     = "stack-names"
	ProcessorConfigFiles    = "config-files"
	ProcessorTemplates      = "templates"
	ProcessorDefaults       = "defaults"
	ProcessorConfigDefaults = "config-defaults"

	// ProcessorAWSEnv is registered by callers that can reach AWS, see SetEnvFromSource
	ProcessorAWSEnv = "aws-env"
)

// Registry maps processor names to processors so that pipelines can be
// described in configuration files and on the command line
type Registry struct {
	processors map[string]Processor
}

// NewRegistry creates a registry holding the built-in processors. Config
// files are read relative to configDir.
func NewRegistry(configDir string) *Registry {
	loadConfig := LoadConfigFilesFrom(configDir)

	return &Registry{
		processors: map[string]Processor{
			ProcessorEnv:            SetEnvFromEnvVars,
			ProcessorDefaultStack:   SetDefaultStackIfNoStacks,
			ProcessorStackNames:     SetStackNames,
			ProcessorConfigFiles:    loadConfig,
			ProcessorTemplates:      ExpandContextTemplates,
			ProcessorDefaults:       SimpleDefaults,
			ProcessorConfigDefaults: Chain(SimpleDefaults, loadConfig),
		},
	}
}

// Register adds or replaces a named processor
func (r *Registry) Register(name string, p Processor) {
	r.processors[name] = p
}

// Lookup returns the processor registered under name
func (r *Registry) Lookup(name string) (Processor, bool) {
	p, ok := r.processors[name]
	return p, ok
}

// Resolve turns a list of names into processors, keeping the order
func (r *Registry) Resolve(names []string) ([]Processor, error) {
	processors := make([]Processor, 0, len(names))
	for _, name := range names {
		p, ok := r.processors[name]
		if !ok {
			return nil, fmt.Errorf("unknown option processor '%s' (available: %v)", name, r.Names())
		}
		processors = append(processors, p)
	}
	return processors, nil
}

// Names returns the registered processor names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.processors))
	for name := range r.processors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
