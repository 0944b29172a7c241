package app

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, "introspection-graph-mermaid")
	return nil
}

// ReportLoggerIntrospector logs every configuration key read during startup
// and whether its default value was used.
type ReportLoggerIntrospector struct {
	Logger *log.Logger `resolve:""`
}

// Introspect writes the configuration report to the logger.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		resolved, err := depend.Resolve[*log.Logger]()
		if err != nil {
			return nil
		}
		logger = resolved
	}

	defaults := 0
	for _, c := range r.Configs {
		source := "configured"
		if c.UsedDefault {
			source = "default"
			defaults++
		}
		logger.Printf("Introspection: config %s (%s)", c.Key, source)
	}
	logger.Printf("Introspection: %d config keys read, %d from defaults", len(r.Configs), defaults)
	return nil
}
