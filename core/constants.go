package core

const (
	MillisecondsPerSecond = 1000
	SecondsPerMinute      = 60
	MinutesPerHour        = 60
	HoursPerDay           = 24
)
