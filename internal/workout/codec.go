package workout

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// DateCodec converts between the textual date stored in the data file and time.Time.
type DateCodec interface {
	Parse(value string) (time.Time, error)
	Format(t time.Time) string
}

// RFC2822 is the default codec, e.g. "Sat, 17 Oct 2026 08:15:00 +0200".
// The day of month is not zero padded when formatting.
var RFC2822 DateCodec = rfc2822Codec{}

// RFC3339 stores ISO-8601 timestamps with an offset.
var RFC3339 DateCodec = rfc3339Codec{}

const rfc2822Layout = "Mon, 2 Jan 2006 15:04:05 -0700"

type rfc2822Codec struct{}

func (rfc2822Codec) Parse(value string) (time.Time, error) {
	return mail.ParseDate(strings.TrimSpace(value))
}

func (rfc2822Codec) Format(t time.Time) string {
	return t.Format(rfc2822Layout)
}

type rfc3339Codec struct{}

func (rfc3339Codec) Parse(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, strings.TrimSpace(value))
}

func (rfc3339Codec) Format(t time.Time) string {
	return t.Format(time.RFC3339)
}

// CodecFor returns the codec registered under name (rfc2822 or rfc3339).
func CodecFor(name string) (DateCodec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rfc2822":
		return RFC2822, nil
	case "rfc3339":
		return RFC3339, nil
	default:
		return nil, fmt.Errorf("unknown date format %q", name)
	}
}
