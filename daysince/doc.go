// Package daysince records when an action was last done and reports how
// long ago that was.
//
// Entries are kept in a single file, ~/.daysince.json by default, with one
// "label,timestamp" line per action. The file is read on Open and rewritten
// in full on every Did.
//
// Example:
//
//	tracker, err := daysince.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = tracker.Did("gym")
//	elapsed, found, err := tracker.Since("gym")
package daysince
