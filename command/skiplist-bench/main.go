// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/skiplist"
	"github.com/bitmark-inc/skiplist/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "log-dir", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--count=N] [--seed=N] [--log-dir=DIR]", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	count := 100000
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err || count < 1 {
			exitwithstatus.Message("%s: invalid count: %q", program, options["count"][0])
		}
	}

	seed := time.Now().UnixNano()
	if len(options["seed"]) > 0 {
		seed, err = strconv.ParseInt(options["seed"][0], 10, 64)
		if nil != err {
			exitwithstatus.Message("%s: invalid seed: %q", program, options["seed"][0])
		}
	}

	logDir := os.TempDir()
	if len(options["log-dir"]) > 0 {
		logDir = options["log-dir"][0]
	}

	// start logging
	logging := logger.Configuration{
		Directory: logDir,
		File:      "skiplist-bench.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("bench")
	log.Infof("starting: count: %d  seed: %d", count, seed)

	if err := run(log, count, seed, verbose, quiet); nil != err {
		fault.Criticalf("benchmark failed: %s", err)
		exitwithstatus.Message("%s: benchmark failed: %s", program, err)
	}
	log.Info("finished")
}

// run the insert/search/remove cycle and report the rates
func run(log *logger.L, count int, seed int64, verbose bool, quiet bool) error {

	rnd := rand.New(rand.NewSource(seed))
	pool := skiplist.NewPool()

	list, err := skiplist.NewWithAllocator(
		func(a interface{}, b interface{}) int {
			return a.(int) - b.(int)
		},
		func(interface{}) {},
		rnd.Int63(),
		pool,
	)
	if nil != err {
		return err
	}

	keys := rnd.Perm(count)

	start := time.Now()
	for _, key := range keys {
		if err := list.Insert(key); nil != err {
			return err
		}
	}
	report(log, quiet, "insert", count, time.Since(start))

	if count != list.Count() {
		return fmt.Errorf("count: actual: %d  expected: %d", list.Count(), count)
	}
	// a broken structure is a programming error, not a benchmark result
	fault.PanicIfError("structure check", list.CheckStructure())

	if verbose {
		histogram(log, list)
	}

	start = time.Now()
	for _, key := range keys {
		if nil == list.Search(key) {
			return fmt.Errorf("lost key: %d", key)
		}
	}
	report(log, quiet, "search", count, time.Since(start))

	removeOrder := rnd.Perm(count)
	start = time.Now()
	for _, key := range removeOrder {
		if err := list.Remove(key); nil != err {
			return err
		}
	}
	report(log, quiet, "remove", count, time.Since(start))

	if !list.IsEmpty() {
		return fmt.Errorf("residual values: %d", list.Count())
	}
	if err := list.Destroy(); nil != err {
		return err
	}
	if 0 != pool.Live() {
		return fmt.Errorf("leaked nodes: %d", pool.Live())
	}
	return nil
}

// print and log one timing line
func report(log *logger.L, quiet bool, phase string, count int, elapsed time.Duration) {
	rate := float64(count) / elapsed.Seconds()
	log.Infof("%s: %d items in %s  (%.0f/s)", phase, count, elapsed, rate)
	if !quiet {
		fmt.Printf("%-7s %9d items  %12s  %12.0f/s\n", phase, count, elapsed, rate)
	}
}

// log the node height distribution
func histogram(log *logger.L, list *skiplist.List) {
	counts := make([]int, skiplist.MaxHeight+1)
	for p := list.First(); nil != p; p = p.Next() {
		counts[p.Height()] += 1
	}
	for height := 1; height <= skiplist.MaxHeight; height += 1 {
		if 0 == counts[height] {
			continue
		}
		log.Infof("height %2d: %d nodes", height, counts[height])
		fmt.Printf("height %2d: %d nodes\n", height, counts[height])
	}
	fmt.Printf("active height: %d\n", list.Height())
}
