package constants

// DayFormat is the calendar-day layout used for completion lookups. Stored
// record timestamps must begin with this layout so that day membership can be
// decided by prefix match.
const DayFormat = "2006-01-02"

// TimestampFormat is the precise layout stamped on completion records.
const TimestampFormat = "2006-01-02 15:04:05"

// DefaultDBPath is the default location of the tally database.
const DefaultDBPath = "~/.config/tally/tally.db"
