package display

import (
	"fmt"
	"github.com/gostonefire/recordtable/interfaces"
	"github.com/gostonefire/recordtable/internal/conf"
	"github.com/gostonefire/recordtable/internal/model"
	"github.com/rivo/uniseg"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasttemplate"
	"io"
	"strconv"
)

// recordBlock - Fixed block a record is rendered as
const recordBlock = "ID:    {{id}}\nName:  {{first}} {{last}}\nScore: {{score}}\n"

var recordTemplate = fasttemplate.New(recordBlock, "{{", "}}")

// Truncate - Returns s cut to at most width terminal cells, never splitting a grapheme cluster
func Truncate(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var used, end int
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width {
			break
		}
		used += w
		_, end = g.Positions()
	}

	return s[:end]
}

// FormatScore - Returns score with exactly two decimals
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

// FormatRecord - Returns the record as a fixed block of id, full name and score with two decimals.
// Each name is bounded to conf.NameDisplayWidth terminal cells.
func FormatRecord(record model.Record) string {
	return recordTemplate.ExecuteString(map[string]interface{}{
		"id":    strconv.FormatInt(record.Key(), 10),
		"first": Truncate(record.FirstName(), conf.NameDisplayWidth),
		"last":  Truncate(record.LastName(), conf.NameDisplayWidth),
		"score": FormatScore(record.Score()),
	})
}

// Print - Writes every record of source as a block, blocks separated by an empty line, in source iteration order
//   - w is where to write
//   - source is the table (or anything else) handing out the records
//
// It returns:
//   - printed is the number of records written
//   - err is a standard error, if something went wrong
func Print(w io.Writer, source interfaces.RecordSource) (printed int64, err error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	err = source.ForEach(func(record model.Record) bool {
		if printed > 0 {
			_ = buf.WriteByte('\n')
		}
		_, _ = buf.WriteString(FormatRecord(record))
		printed++
		return true
	})
	if err != nil {
		err = fmt.Errorf("error while collecting records to print: %w", err)
		return
	}

	_, err = buf.WriteTo(w)

	return
}

// PrintPositions - Writes one "<id> at position <bucket>" line per record of source in iteration order
func PrintPositions(w io.Writer, source interfaces.PositionedRecordSource) (err error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	err = source.ForEachWithBucket(func(record model.Record, bucketNo int64) bool {
		_, _ = fmt.Fprintf(buf, "%d at position %d\n", record.Key(), bucketNo)
		return true
	})
	if err != nil {
		err = fmt.Errorf("error while collecting record positions: %w", err)
		return
	}

	_, err = buf.WriteTo(w)

	return
}
