package main

import (
	"context"
	"io"
	"time"

	"github.com/previewkit/tme/resolve"
)

// Dependencies holds the resolver and IO streams for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Resolver *resolve.Resolver
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Get   GetCmd   `cmd:"" help:"Resolve usernames or post paths to structured records"`
	Posts PostsCmd `cmd:"" help:"List the most recent posts of a channel"`

	BaseURL string        `name:"base-url" default:"https://t.me" help:"Preview site root"`
	Timeout time.Duration `name:"timeout" default:"0" help:"Per-request deadline (0 keeps the built-in defaults)"`
	RPS     float64       `name:"rps" default:"0" help:"Throttle outgoing requests (requests per second, 0 disables)"`
	Verbose bool          `short:"v" help:"Enable debug logging"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Inputs      []string `arg:"" name:"input" help:"Username, @username, +invite or username/postId"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent resolve limit"`
}

// PostsCmd is the "posts" subcommand.
type PostsCmd struct {
	Username string `arg:"" help:"Channel username"`
}
