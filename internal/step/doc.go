// Package step resolves the next value of a step sequence. Given a movement
// direction, the current value and an unordered set of candidate values, it
// picks the candidate to move to, saturating at the ends of the range.
package step
