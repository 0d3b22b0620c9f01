package workout

import (
	"fmt"
	"sort"
	"time"
)

// Record is a single date-stamped count of repeats as stored in the data file.
type Record struct {
	Date    string `json:"date"`
	Repeats uint   `json:"repeats"`
}

// NewRecord formats when with codec and pairs it with repeats.
func NewRecord(codec DateCodec, when time.Time, repeats uint) Record {
	return Record{Date: codec.Format(when), Repeats: repeats}
}

// Time parses the record's date with codec.
func (r Record) Time(codec DateCodec) (time.Time, error) {
	t, err := codec.Parse(r.Date)
	if err != nil {
		return time.Time{}, &DateParseError{Value: r.Date, Err: err}
	}
	return t, nil
}

// Difference returns r's date minus other's date.
func (r Record) Difference(codec DateCodec, other Record) (time.Duration, error) {
	a, err := r.Time(codec)
	if err != nil {
		return 0, err
	}
	b, err := other.Time(codec)
	if err != nil {
		return 0, err
	}
	return a.Sub(b), nil
}

// Compare orders two parsed timestamps: -1 if a is earlier, 1 if later, 0 if
// they denote the same instant regardless of offset.
func Compare(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// Sort orders records ascending by date. Records sharing an instant keep
// their relative order. Every date is parsed up front, so an invalid one
// fails the call before the slice is touched.
func Sort(codec DateCodec, records []Record) error {
	keyed := make([]keyedRecord, len(records))
	for i, record := range records {
		t, err := record.Time(codec)
		if err != nil {
			return fmt.Errorf("sort records: %w", err)
		}
		keyed[i] = keyedRecord{at: t, record: record}
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return Compare(keyed[i].at, keyed[j].at) < 0
	})

	for i := range keyed {
		records[i] = keyed[i].record
	}
	return nil
}

type keyedRecord struct {
	at     time.Time
	record Record
}

// First returns the earliest record of a sorted slice.
func First(records []Record) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}
	return records[0], true
}

// Last returns the most recent record of a sorted slice.
func Last(records []Record) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}
	return records[len(records)-1], true
}
