package cli

import (
	"github.com/julianstephens/daybell/internal/notifier"
	"github.com/julianstephens/daybell/internal/planner"
	"github.com/julianstephens/daybell/internal/storage"
)

// Context carries the shared collaborators into every command's Run.
type Context struct {
	Store    storage.Provider
	Notifier notifier.Dispatcher
}

// NewPlanner builds and initializes the day planner over the loaded store.
func (c *Context) NewPlanner() *planner.Planner {
	p := planner.New(c.Store, c.Notifier)
	p.Init()
	return p
}
