// Package env holds the shared environment-variable settings for
// the command tree
package env

// Prefix is the env-var prefix for all flags (ex. PENRATES_LISTEN)
const Prefix = "PENRATES"
