package main

import (
	"github.com/previewkit/tme"
)

// Run executes the posts command.
func (c *PostsCmd) Run(deps *Dependencies) error {
	posts, err := deps.Resolver.Posts(deps.Ctx, c.Username)
	if err != nil {
		_ = writeJSON(deps.Stdout, tme.AsErrorResult(err))
		return err
	}

	return writeJSON(deps.Stdout, posts)
}
