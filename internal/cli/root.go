// Package cli implements the tally subcommands.
package cli

import (
	"github.com/julianstephens/tally/internal/habit"
	"github.com/julianstephens/tally/internal/storage"
)

// Context carries the wired dependencies into every command. The store is
// injected explicitly; nothing reaches for global connection state.
type Context struct {
	Store   storage.Provider
	Service *habit.Service
}
