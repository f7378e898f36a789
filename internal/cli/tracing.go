package cli

import (
	"io"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// traceSelector hands out one gologadapter tracer per key, all writing to w.
type traceSelector struct {
	mu      sync.Mutex
	w       io.Writer
	level   tracing.TraceLevel
	tracers map[string]tracing.Trace
}

func (sel *traceSelector) Select(key string) tracing.Trace {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	if t, ok := sel.tracers[key]; ok {
		return t
	}
	t := gologadapter.New()
	t.SetOutput(sel.w)
	t.SetTraceLevel(sel.level)
	sel.tracers[key] = t
	return t
}

// installTracing routes every trace key to w, filtered by the named level.
func installTracing(w io.Writer, level string) {
	tracing.SetTraceSelector(&traceSelector{
		w:       w,
		level:   tracing.TraceLevelFromString(level),
		tracers: make(map[string]tracing.Trace),
	})
}
