package main

import (
	"github.com/gostonefire/recordtable"
	"github.com/gostonefire/recordtable/hashfunc"
	"github.com/gostonefire/recordtable/internal/conf"
	"github.com/labstack/gommon/log"
	"github.com/mattn/go-isatty"
	"math/rand"
	"os"
	"time"
)

func main() {
	logger := log.New("recordtable")
	logger.SetOutput(os.Stderr)

	config, err := conf.Load()
	if err != nil {
		logger.Fatalf("invalid configuration: %s", err)
	}
	logger.SetLevel(logLevel(config.LogLevel))

	var hashAlgorithm hashfunc.HashAlgorithm
	if config.HashAlgorithm == conf.HashXXHash {
		hashAlgorithm = hashfunc.NewXXHashAlgorithm()
	}

	table, info, err := recordtable.NewRecordTable(config.Capacity, hashAlgorithm)
	if err != nil {
		logger.Fatalf("unable to create record table: %s", err)
	}
	logger.Infoj(log.JSON{
		"event":               "created",
		"capacity":            info.InitialCapacity,
		"collision_threshold": info.CollisionThreshold,
		"hash":                config.HashAlgorithm,
	})

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fd := os.Stdin.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	m := newMenu(table, os.Stdin, os.Stdout, logger, config, rand.New(rand.NewSource(seed)), interactive)
	if err = m.run(); err != nil {
		logger.Fatalf("menu stopped: %s", err)
	}
}

// logLevel - Maps a configured level name to a gommon log level
func logLevel(name string) log.Lvl {
	switch name {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
