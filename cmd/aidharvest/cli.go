package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/aidharvest"
	"github.com/fwojciec/aidharvest/harvest"
	"github.com/fwojciec/aidharvest/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Records   aidharvest.RecordService
	Pages     aidharvest.PageCache
	Fetcher   aidharvest.Fetcher
	Extractor aidharvest.Extractor
	Converter aidharvest.Converter
	Harvester *harvest.Harvester
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Harvest HarvestCmd `cmd:"" help:"Harvest finding aids from URLs"`
	Convert ConvertCmd `cmd:"" help:"Convert a single finding aid document"`
	List    ListCmd    `cmd:"" help:"List harvested finding aids"`
	Leaves  LeavesCmd  `cmd:"" help:"List the leaf items of a harvested finding aid"`
	Paths   PathsCmd   `cmd:"" help:"List leaf context paths of a harvested finding aid"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a harvested finding aid record"`
}

// HarvestCmd is the "harvest" subcommand.
type HarvestCmd struct {
	URLs    []string      `arg:"" optional:"" help:"Finding aid URLs"`
	File    string        `short:"f" help:"File with one finding aid URL per line"`
	Out     string        `short:"o" default:"findingaids" help:"Output directory for artifacts"`
	Delay   time.Duration `short:"d" default:"1s" help:"Delay between requests to the same domain"`
	Verbose bool          `short:"v" help:"Log fetch and extraction details"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Source string `arg:"" help:"Finding aid URL or local HTML file"`
	Out    string `short:"o" default:"." help:"Output directory for artifacts"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// LeavesCmd is the "leaves" subcommand.
type LeavesCmd struct {
	ObjectID string `arg:"" help:"Finding aid object ID"`
}

// PathsCmd is the "paths" subcommand.
type PathsCmd struct {
	ObjectID string `arg:"" help:"Finding aid object ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ObjectID string `arg:"" help:"Finding aid object ID"`
	Force    bool   `help:"Confirm deletion"`
}
