package main

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Dependencies holds shared context and streams for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch    FetchCmd    `cmd:"" help:"Fetch every chapter under a root node"`
	Chapter  ChapterCmd  `cmd:"" help:"Fetch and print a single chapter"`
	Sections SectionsCmd `cmd:"" help:"List stored sections from the database"`
	Search   SearchCmd   `cmd:"" help:"Search stored sections by title or content"`
}

// apiFlags are the content API coordinates shared by fetching commands.
// Defaults target the Austin, TX land development code.
type apiFlags struct {
	JobID     int    `name:"job-id" env:"MUNICODE_JOB_ID" default:"464171" help:"Publication job id"`
	ProductID int    `name:"product-id" env:"MUNICODE_PRODUCT_ID" default:"15303" help:"Product id"`
	BaseURL   string `name:"base-url" env:"MUNICODE_BASE_URL" help:"Content API base URL"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	apiFlags

	RootNode    string        `name:"root-node" env:"MUNICODE_ROOT_NODE" default:"TIT25LADE" help:"Root node to discover chapters under"`
	Out         string        `name:"out" env:"MUNICODE_OUT" default:"municode_data" help:"Base output directory for chapter JSON files"`
	DB          string        `name:"db" env:"MUNICODE_DB" help:"SQLite database path; when set, chapters are mirrored to it"`
	Delay       time.Duration `name:"delay" default:"1s" help:"Pause between successive chapter fetches"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetch limit"`
}

// ChapterCmd is the "chapter" subcommand.
type ChapterCmd struct {
	apiFlags

	Node string `arg:"" help:"Chapter node id, e.g. TIT25_CH1"`
	Full bool   `help:"Print full section content"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	DB      string `name:"db" env:"MUNICODE_DB" default:"municode.db" help:"SQLite database path"`
	Chapter string `help:"Restrict to one chapter key"`
	Depth   int    `default:"-1" help:"Restrict to one node depth"`
	Limit   int    `default:"50" help:"Maximum sections to print"`
	Offset  int    `help:"Sections to skip"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	DB    string `name:"db" env:"MUNICODE_DB" default:"municode.db" help:"SQLite database path"`
	Query string `arg:"" help:"Text to match against section titles and content"`
	Limit int    `default:"20" help:"Maximum sections to print"`
	Full  bool   `help:"Print full section content"`
}
