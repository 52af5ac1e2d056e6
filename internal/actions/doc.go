// Package actions provides high-level operations for manipulating the commit
// tree, sitting between the CLI commands and the engine. Each action takes a
// runtime context and an options struct, talks to the engine, and reports
// through splog.
package actions
