package commands

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracerKeys lists the tracers of all packages of this module.
var tracerKeys = []string{
	"restyle.damage",
	"restyle.restyle",
	"restyle.style",
	"restyle.css",
	"restyle.computed",
	"restyle.cssom",
	"restyle.styledtree",
	"restyle.tree",
	"restyle.dom",
}

// configureTracing routes all tracers to the Go standard logger, with the
// given trace level.
func configureTracing(level string) error {
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "error":
		l = tracing.LevelError
	case "info":
		l = tracing.LevelInfo
	case "debug":
		l = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range tracerKeys {
		conf["trace."+key] = level
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	for _, key := range tracerKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}
