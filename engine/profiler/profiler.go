// Package profiler times the stages of a render pass and logs a summary,
// the same way the teacher lineage's frame profiler logs FPS and memory
// stats at an interval - just for a one-shot batch job instead of a loop.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler accumulates named stage durations for a single render pass and
// logs memory statistics alongside them.
type Profiler struct {
	stages   []stageTiming
	memStats runtime.MemStats
}

type stageTiming struct {
	name     string
	duration time.Duration
}

// NewProfiler returns an empty Profiler.
func NewProfiler() *Profiler {
	return &Profiler{}
}

// Stage times fn and records its duration under name.
func (p *Profiler) Stage(name string, fn func()) {
	start := time.Now()
	fn()
	p.stages = append(p.stages, stageTiming{name: name, duration: time.Since(start)})
}

// Report logs every recorded stage's duration plus current heap usage.
func (p *Profiler) Report() {
	var total time.Duration
	for _, s := range p.stages {
		log.Printf("[profiler] %s: %s", s.name, s.duration)
		total += s.duration
	}

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	log.Printf("[profiler] total: %s | heap: %.2f MB | sys: %.2f MB", total, allocMB, sysMB)
}
