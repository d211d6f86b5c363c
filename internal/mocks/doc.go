// Package mocks provides function-field test doubles for the service
// interfaces. Each mock records its calls and falls back to fixed return
// values when no function is set.
package mocks
