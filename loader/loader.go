package loader

import (
	"github.com/gostonefire/recordtable/interfaces"
	"github.com/gostonefire/recordtable/internal/conf"
	"github.com/gostonefire/recordtable/internal/model"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"math"
	"math/rand"
	"os"
	"strings"
	"unicode"
)

// Loader - Generates records with random names and scores and inserts them into a table
//   - FirstNames and LastNames are the word lists names are drawn from, neither may be empty
//   - Rand is the random source, each record draws its own first name, last name and score from it
//   - Logger receives a JSON event per generated batch, nil disables logging
type Loader struct {
	FirstNames []string
	LastNames  []string
	Rand       *rand.Rand
	Logger     *log.Logger
}

// ReadWordList - Reads a whitespace or newline delimited word list from path.
// Tokens without any letter (numbering, punctuation) are skipped and words are title cased so that "ADA",
// "ada" and "Ada" all become "Ada".
//
// It returns:
//   - words is the list of words in file order
//   - err is of type MissingWordList if the file can not be read, ShortWordList if it holds no words
func ReadWordList(path string) (words []string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(MissingWordList{}, "word list %s: %s", path, err)
		return
	}

	caser := cases.Title(language.Und)
	words = lo.FilterMap(strings.Fields(string(data)), func(word string, _ int) (string, bool) {
		if strings.IndexFunc(word, unicode.IsLetter) < 0 {
			return "", false
		}
		return caser.String(word), true
	})

	if len(words) == 0 {
		err = errors.Wrapf(ShortWordList{}, "word list %s", path)
		words = nil
		return
	}

	return
}

// LoadFiles - Reads the first and last name word lists and returns a Loader using them.
// Nothing is inserted anywhere, so a failing word list leaves every table untouched.
//   - firstNamesPath and lastNamesPath are the word list files
//   - rnd is the random source, nil gives one seeded with 1
func LoadFiles(firstNamesPath, lastNamesPath string, rnd *rand.Rand) (loader *Loader, err error) {
	firstNames, err := ReadWordList(firstNamesPath)
	if err != nil {
		return
	}
	lastNames, err := ReadWordList(lastNamesPath)
	if err != nil {
		return
	}

	loader, err = New(firstNames, lastNames, rnd)

	return
}

// New - Returns a pointer to a new Loader given word lists
//   - firstNames and lastNames are the word lists names are drawn from, neither may be empty
//   - rnd is the random source, nil gives one seeded with 1
func New(firstNames, lastNames []string, rnd *rand.Rand) (loader *Loader, err error) {
	if len(firstNames) == 0 {
		err = errors.Wrap(ShortWordList{}, "first names")
		return
	}
	if len(lastNames) == 0 {
		err = errors.Wrap(ShortWordList{}, "last names")
		return
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}

	loader = &Loader{FirstNames: firstNames, LastNames: lastNames, Rand: rnd}

	return
}

// NewRecord - Returns a record with key and an independently drawn first name, last name and score in [0, 4)
func (L *Loader) NewRecord(key int64) model.Record {
	firstName := L.FirstNames[L.Rand.Intn(len(L.FirstNames))]
	lastName := L.LastNames[L.Rand.Intn(len(L.LastNames))]
	score := L.Rand.Float64() * conf.MaxScore

	return model.NewRecord(key, firstName, lastName, score)
}

// Generate - Inserts count generated records with sequential keys starting at startKey.
// It stops at the first failing insert, for instance a key that already exists.
//   - inserter is the table to insert into
//   - startKey is the key of the first record
//   - count is the number of records to generate
//
// It returns:
//   - inserted is the number of records inserted before an eventual error
//   - err is the wrapped insert error, errors.Is can be used to match the table error type, or KeyRange if
//     the last key would pass math.MaxInt64, in which case nothing is inserted
func (L *Loader) Generate(inserter interfaces.RecordInserter, startKey, count int64) (inserted int64, err error) {
	if count > 0 && startKey > math.MaxInt64-(count-1) {
		err = errors.Wrapf(KeyRange{}, "%d keys starting at %d", count, startKey)
		return
	}

	for i := int64(0); i < count; i++ {
		err = inserter.Insert(L.NewRecord(startKey + i))
		if err != nil {
			err = errors.Wrapf(err, "generated record %d of %d", inserted+1, count)
			break
		}
		inserted++
	}

	if L.Logger != nil {
		event := log.JSON{"event": "generate", "start_key": startKey, "requested": count, "inserted": inserted}
		if err != nil {
			event["error"] = err.Error()
			L.Logger.Warnj(event)
		} else {
			L.Logger.Infoj(event)
		}
	}

	return
}
