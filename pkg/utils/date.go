package utils

import "time"

// commandDateLayout is the date format users type in bot command arguments.
const commandDateLayout = "02.01.2006"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseCommandDate parses a DD.MM.YYYY date from a bot command argument.
func ParseCommandDate(dateStr string) (time.Time, error) {
	return time.Parse(commandDateLayout, dateStr)
}
