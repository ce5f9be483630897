package config

// SequentialConfig configures a sequential composite.
type SequentialConfig struct {
	// Name overrides the default "sequential#n" name. Empty means unset.
	Name string `json:"name"`
}

func DefaultSequentialConfig() SequentialConfig {
	return SequentialConfig{}
}

func (c *SequentialConfig) Merge(source *SequentialConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}
}

// ParallelConfig configures a parallel composite.
type ParallelConfig struct {
	Name string `json:"name"`

	// FailFastNil controls fail-fast cancellation. When nil, defaults to
	// false (wait for all children) per the spec default.
	FailFastNil *bool `json:"fail_fast"`

	// ShareContextNil controls whether children run against the caller's
	// context or an isolated copy. When nil, defaults to true.
	ShareContextNil *bool `json:"share_context"`
}

func (c *ParallelConfig) FailFast() bool {
	if c.FailFastNil == nil {
		return false
	}
	return *c.FailFastNil
}

func (c *ParallelConfig) ShareContext() bool {
	if c.ShareContextNil == nil {
		return true
	}
	return *c.ShareContextNil
}

func DefaultParallelConfig() ParallelConfig {
	failFast := false
	shareContext := true
	return ParallelConfig{
		FailFastNil:     &failFast,
		ShareContextNil: &shareContext,
	}
}

func (c *ParallelConfig) Merge(source *ParallelConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}
	if source.FailFastNil != nil {
		c.FailFastNil = source.FailFastNil
	}
	if source.ShareContextNil != nil {
		c.ShareContextNil = source.ShareContextNil
	}
}

// ConditionalConfig configures a conditional composite.
type ConditionalConfig struct {
	Name string `json:"name"`
}

func DefaultConditionalConfig() ConditionalConfig {
	return ConditionalConfig{}
}

func (c *ConditionalConfig) Merge(source *ConditionalConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}
}

// SwitchConfig configures a multi-way branching composite.
type SwitchConfig struct {
	Name string `json:"name"`
}

func DefaultSwitchConfig() SwitchConfig {
	return SwitchConfig{}
}

func (c *SwitchConfig) Merge(source *SwitchConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}
}

// FallbackConfig configures a fallback composite.
type FallbackConfig struct {
	Name string `json:"name"`
}

func DefaultFallbackConfig() FallbackConfig {
	return FallbackConfig{}
}

func (c *FallbackConfig) Merge(source *FallbackConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}
}

// SagaConfig configures a saga composite.
type SagaConfig struct {
	Name string `json:"name"`
}

func DefaultSagaConfig() SagaConfig {
	return SagaConfig{}
}

func (c *SagaConfig) Merge(source *SagaConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}
}

// TimeoutConfig configures a timeout composite.
type TimeoutConfig struct {
	Name string `json:"name"`

	// TimeoutMillis must be > 0. The builder does not validate it: a zero
	// or negative value makes every execution time out at once.
	TimeoutMillis int64 `json:"timeout_millis"`
}

func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{}
}

func (c *TimeoutConfig) Merge(source *TimeoutConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}
	if source.TimeoutMillis > 0 {
		c.TimeoutMillis = source.TimeoutMillis
	}
}

// RateLimitedConfig configures a rate-limited composite.
type RateLimitedConfig struct {
	Name string `json:"name"`
}

func DefaultRateLimitedConfig() RateLimitedConfig {
	return RateLimitedConfig{}
}

func (c *RateLimitedConfig) Merge(source *RateLimitedConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}
}

// RepeatConfig configures a repeat composite.
type RepeatConfig struct {
	Name string `json:"name"`

	// Times is the iteration count; must be >= 0.
	Times int `json:"times"`

	// IndexVar, if non-empty, is the context key set to the 0-based
	// iteration index before each run of the inner workflow.
	IndexVar string `json:"index_var"`
}

func DefaultRepeatConfig() RepeatConfig {
	return RepeatConfig{}
}

func (c *RepeatConfig) Merge(source *RepeatConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}
	if source.Times > 0 {
		c.Times = source.Times
	}
	if source.IndexVar != "" {
		c.IndexVar = source.IndexVar
	}
}

// ForEachConfig configures a foreach composite.
type ForEachConfig struct {
	Name string `json:"name"`

	// ItemsKey names the context entry holding the list to iterate.
	ItemsKey string `json:"items_key"`

	// ItemVar names the context key set to the current element.
	ItemVar string `json:"item_var"`

	// IndexVar, if non-empty, is the context key set to the 0-based index.
	IndexVar string `json:"index_var"`
}

func DefaultForEachConfig() ForEachConfig {
	return ForEachConfig{}
}

func (c *ForEachConfig) Merge(source *ForEachConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}
	if source.ItemsKey != "" {
		c.ItemsKey = source.ItemsKey
	}
	if source.ItemVar != "" {
		c.ItemVar = source.ItemVar
	}
	if source.IndexVar != "" {
		c.IndexVar = source.IndexVar
	}
}

// TaskWorkflowConfig configures the task adapter workflow.
type TaskWorkflowConfig struct {
	Name string `json:"name"`
}

func DefaultTaskWorkflowConfig() TaskWorkflowConfig {
	return TaskWorkflowConfig{}
}

func (c *TaskWorkflowConfig) Merge(source *TaskWorkflowConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}
}
