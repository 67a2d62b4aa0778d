// Package commands implements the sns CLI, a headless client that drives
// the daily-sns view models against either an in-process mock backend or
// a remote API and prints the resulting state as JSON.
package commands
