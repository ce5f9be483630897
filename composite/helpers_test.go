package composite_test

import (
	"errors"
	"time"

	"github.com/taucore/workflow/config"
	"github.com/taucore/workflow/wfcontext"
)

var assertErr = errors.New("selector blew up")

// fixedTime gives recordingWorkflow deterministic, cheap timestamps;
// the composite under test re-stamps startedAt/completedAt itself, so
// these values never surface in assertions.
func fixedTime() time.Time { return time.Unix(0, 0) }

// taskFunc adapts a plain function to the task.Task interface without
// every test file needing its own import alias.
type taskFunc func(ctx *wfcontext.Context) error

func (f taskFunc) Execute(ctx *wfcontext.Context) error { return f(ctx) }

func parallelFailFastConfig() config.ParallelConfig {
	cfg := config.DefaultParallelConfig()
	failFast := true
	cfg.FailFastNil = &failFast
	return cfg
}

func parallelIsolatedConfig() config.ParallelConfig {
	cfg := config.DefaultParallelConfig()
	shareContext := false
	cfg.ShareContextNil = &shareContext
	return cfg
}

func repeatConfigWithIndexVar(times int, indexVar string) config.RepeatConfig {
	return config.RepeatConfig{Times: times, IndexVar: indexVar}
}

func foreachConfig(itemsKey, itemVar, indexVar string) config.ForEachConfig {
	return config.ForEachConfig{ItemsKey: itemsKey, ItemVar: itemVar, IndexVar: indexVar}
}
