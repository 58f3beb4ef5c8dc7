// Package models defines the records managed by the gym desk.
//
// # Entity Kinds
//
//   - Plan: a subscription plan members can subscribe to
//   - Equipment: an inventory line with a quantity
//   - Member: a login account with an optional current plan
//
// Every record carries an integer ID assigned by its record store. IDs are
// unique within a store but are not stable across deletions: the next ID is
// always one more than the highest ID currently present.
//
// # Relationships
//
// A Member references a Plan by ID only (CurrentPlanID). Nothing checks that
// the plan exists and deleting a plan leaves subscribed members pointing at
// the old ID. NoPlan marks a member without a subscription.
//
// # Field Limits
//
// String fields are bounded the way the on-disk format expects them. Clip
// truncates a value to its limit without splitting a UTF-8 sequence.
package models

import "unicode/utf8"

// Clip truncates s to at most max bytes, backing off to the previous rune
// boundary when the cut would land inside a multi-byte sequence.
func Clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
