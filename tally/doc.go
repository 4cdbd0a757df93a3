// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally derives poll views and percentages from stored rows.

All functions are pure: same input, same output, no I/O.

	view := tally.View(poll)          // totalVotes = sum of option votes
	pct := tally.Percentages(view)    // round(votes/total*100), 0 if total is 0

Percentages are never stored; presentation code asks for them on demand.
*/
package tally
