package composite

import (
	"fmt"
	"sync/atomic"
)

var nameCounters struct {
	sequential  atomic.Int64
	parallel    atomic.Int64
	conditional atomic.Int64
	switchTag   atomic.Int64
	fallback    atomic.Int64
	saga        atomic.Int64
	timeout     atomic.Int64
	rateLimited atomic.Int64
	repeat      atomic.Int64
	forEach     atomic.Int64
	task        atomic.Int64
}

func nextName(counter *atomic.Int64, tag string) string {
	n := counter.Add(1)
	return fmt.Sprintf("%s#%d", tag, n)
}

func resolveName(explicit string, counter *atomic.Int64, tag string) string {
	if explicit != "" {
		return explicit
	}
	return nextName(counter, tag)
}
