package delimited

import (
	"github.com/typerow/typerow/errors"
)

// Config fixes the wire format at engine construction time.
//
// Two escaping disciplines exist. When Escape is set, fields are written
// bare and every separator, escape character, and line terminator inside a
// value is escape-prefixed. When Escape is zero, fields containing the
// separator, the quote character, or a line terminator are wrapped in Quote
// with embedded quotes doubled.
type Config struct {
	// Sep separates fields within a record. Default ','.
	Sep rune
	// Quote wraps fields under the quoting discipline. Default '"';
	// ignored while Escape is set.
	Quote rune
	// Escape selects the escaping discipline when non-zero.
	Escape rune
	// Header controls whether writers emit and readers expect a leading
	// row of external field names.
	Header bool
}

// DefaultConfig returns the standard CSV configuration: comma separator,
// double-quote quoting, header row on.
func DefaultConfig() Config {
	return Config{Sep: ',', Quote: '"', Header: true}
}

func (c Config) withDefaults() Config {
	if c.Sep == 0 {
		c.Sep = ','
	}
	if c.Quote == 0 && c.Escape == 0 {
		c.Quote = '"'
	}
	return c
}

func (c Config) validate() error {
	switch c.Sep {
	case '\n', '\r':
		return errors.InvalidConfig("separator cannot be a line terminator")
	}
	if c.Escape != 0 {
		if c.Escape == c.Sep {
			return errors.InvalidConfig("escape character cannot equal the separator")
		}
		switch c.Escape {
		case '\n', '\r':
			return errors.InvalidConfig("escape character cannot be a line terminator")
		case 'n', 'r':
			// reserved by the escape mapping for \n and \r
			return errors.InvalidConfig("escape character cannot be 'n' or 'r'")
		}
		switch c.Sep {
		case 'n', 'r':
			// an escaped separator would collide with the \n and \r mapping
			return errors.InvalidConfig("separator cannot be 'n' or 'r' under the escape discipline")
		}
		return nil
	}
	if c.Quote == c.Sep {
		return errors.InvalidConfig("quote character cannot equal the separator")
	}
	switch c.Quote {
	case '\n', '\r':
		return errors.InvalidConfig("quote character cannot be a line terminator")
	}
	return nil
}
