package main

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/recordtable"
	"github.com/gostonefire/recordtable/display"
	"github.com/gostonefire/recordtable/internal/conf"
	"github.com/gostonefire/recordtable/loader"
	"github.com/labstack/gommon/log"
	"io"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

const menuText = `
1) Insert record
2) Delete record
3) Find record
4) Print all records
5) Load random records
6) Clear table
7) Table statistics
8) Print bucket positions
0) Quit
`

// errQuit - Returned by a menu choice to end the loop
var errQuit = errors.New("quit")

// menu - Reads choices from in and runs them against table, output goes to out
type menu struct {
	table       *recordtable.RecordTable
	in          *bufio.Scanner
	out         io.Writer
	logger      *log.Logger
	config      conf.Config
	rnd         *rand.Rand
	loader      *loader.Loader
	interactive bool
}

func newMenu(
	table *recordtable.RecordTable,
	in io.Reader,
	out io.Writer,
	logger *log.Logger,
	config conf.Config,
	rnd *rand.Rand,
	interactive bool,
) *menu {
	return &menu{
		table:       table,
		in:          bufio.NewScanner(in),
		out:         out,
		logger:      logger,
		config:      config,
		rnd:         rnd,
		interactive: interactive,
	}
}

// run - Runs the menu loop until quit or end of input, errors from single choices are reported and the loop goes on
func (M *menu) run() (err error) {
	for {
		if M.interactive {
			M.printf("%s", menuText)
		}

		var choice string
		choice, err = M.ask("Choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return
		}

		err = M.dispatch(choice)
		if errors.Is(err, errQuit) {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			M.printf("Error: %s\n", err)
			M.logger.Debugf("choice %q failed: %s", choice, err)
		}
	}
}

func (M *menu) dispatch(choice string) error {
	switch choice {
	case "1":
		return M.insert()
	case "2":
		return M.delete()
	case "3":
		return M.find()
	case "4":
		_, err := display.Print(M.out, M.table)
		return err
	case "5":
		return M.load()
	case "6":
		M.table.Clear()
		M.printf("Table cleared\n")
		return nil
	case "7":
		return M.stat()
	case "8":
		return display.PrintPositions(M.out, M.table)
	case "0", "q", "quit":
		return errQuit
	case "":
		return nil
	default:
		return fmt.Errorf("unknown choice %q", choice)
	}
}

func (M *menu) insert() (err error) {
	key, err := M.askInt("Key: ")
	if err != nil {
		return
	}
	firstName, err := M.askName("First name: ")
	if err != nil {
		return
	}
	lastName, err := M.askName("Last name: ")
	if err != nil {
		return
	}
	score, err := M.askFloat("Score: ")
	if err != nil {
		return
	}

	err = M.insertRecord(recordtable.NewRecord(key, firstName, lastName, score))
	if errors.Is(err, recordtable.KeyExists{}) {
		err = fmt.Errorf("a record with key %d already exists", key)
		return
	}
	if err != nil {
		return
	}

	M.printf("Inserted record %d\n", key)

	return
}

// insertRecord - Inserts record and logs an event if the insert made the table grow
func (M *menu) insertRecord(record recordtable.Record) (err error) {
	capacity := M.table.Capacity()
	err = M.table.Insert(record)
	if err == nil && M.table.Capacity() != capacity {
		M.logger.Infoj(log.JSON{"event": "rehash", "from": capacity, "to": M.table.Capacity(), "records": M.table.Len()})
	}

	return
}

func (M *menu) delete() (err error) {
	key, err := M.askInt("Key: ")
	if err != nil {
		return
	}

	deleted, err := M.table.Delete(key)
	if err != nil {
		return
	}
	if deleted {
		M.printf("Deleted record %d\n", key)
	} else {
		M.printf("No record with key %d\n", key)
	}

	return
}

func (M *menu) find() (err error) {
	key, err := M.askInt("Key: ")
	if err != nil {
		return
	}

	record, err := M.table.Get(key)
	if errors.Is(err, recordtable.NoRecordFound{}) {
		M.printf("No record with key %d\n", key)
		return nil
	}
	if err != nil {
		return
	}

	M.printf("%s", display.FormatRecord(record))

	return
}

func (M *menu) load() (err error) {
	count, err := M.askInt("Number of records: ")
	if err != nil {
		return
	}
	if count <= 0 {
		err = fmt.Errorf("number of records must be higher than 0 (zero)")
		return
	}

	if M.loader == nil {
		M.loader, err = loader.LoadFiles(M.config.FirstNamesFile, M.config.LastNamesFile, M.rnd)
		if err != nil {
			M.logger.Warnf("unable to load word lists: %s", err)
			return
		}
		M.loader.Logger = M.logger
	}

	startKey, err := M.nextKey()
	if err != nil {
		return
	}
	capacity := M.table.Capacity()
	inserted, err := M.loader.Generate(M.table, startKey, count)
	if M.table.Capacity() != capacity {
		M.logger.Infoj(log.JSON{"event": "rehash", "from": capacity, "to": M.table.Capacity(), "records": M.table.Len()})
	}
	M.printf("Loaded %d records with keys %d to %d\n", inserted, startKey, startKey+inserted-1)

	return
}

// nextKey - Returns one more than the highest key in the table, or 1 for an empty table
func (M *menu) nextKey() (next int64, err error) {
	next = 1
	full := false
	err = M.table.ForEach(func(record recordtable.Record) bool {
		if record.Key() == math.MaxInt64 {
			full = true
			return false
		}
		if record.Key() >= next {
			next = record.Key() + 1
		}
		return true
	})
	if err == nil && full {
		err = fmt.Errorf("no keys left after %d", int64(math.MaxInt64))
	}

	return
}

func (M *menu) stat() (err error) {
	stat, err := M.table.Stat(false)
	if err != nil {
		return
	}

	M.printf("Records:       %d\n", stat.Records)
	M.printf("Capacity:      %d\n", stat.Capacity)
	M.printf("Used buckets:  %d\n", stat.UsedBuckets)
	M.printf("Longest chain: %d\n", stat.LongestChain)
	M.printf("Rehashes:      %d\n", stat.Rehashes)

	return
}

// ask - Shows prompt when interactive and returns the next trimmed input line, io.EOF at end of input
func (M *menu) ask(prompt string) (line string, err error) {
	if M.interactive {
		M.printf("%s", prompt)
	}

	if !M.in.Scan() {
		err = M.in.Err()
		if err == nil {
			err = io.EOF
		}
		return
	}

	line = strings.TrimSpace(M.in.Text())

	return
}

func (M *menu) askInt(prompt string) (value int64, err error) {
	line, err := M.ask(prompt)
	if err != nil {
		return
	}

	value, err = strconv.ParseInt(line, 10, 64)
	if err != nil {
		err = fmt.Errorf("%q is not a valid integer", line)
	}

	return
}

func (M *menu) askFloat(prompt string) (value float64, err error) {
	line, err := M.ask(prompt)
	if err != nil {
		return
	}

	value, err = strconv.ParseFloat(line, 64)
	if err != nil {
		err = fmt.Errorf("%q is not a valid number", line)
	}

	return
}

// askName - Reads a name and bounds it to the display width
func (M *menu) askName(prompt string) (name string, err error) {
	name, err = M.ask(prompt)
	if err != nil {
		return
	}
	if name == "" {
		err = fmt.Errorf("name can not be empty")
		return
	}

	name = display.Truncate(name, conf.NameDisplayWidth)

	return
}

func (M *menu) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(M.out, format, args...)
}
