// Package config defines the builder option structs for every composite
// workflow. Each Config is used only while a builder is assembling a
// Workflow; once built, the composite holds plain fields, not a Config.
//
// The *bool-plus-Nil-suffix convention (e.g. FailFastNil with a FailFast()
// accessor) lets a config distinguish "caller left this unset" from
// "caller explicitly set this to false", which plain bool fields cannot
// express. Merge folds a source config into a receiver, only overwriting
// fields the source actually set.
package config
