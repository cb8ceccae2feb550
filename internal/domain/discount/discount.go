// Package discount adjusts a pre-discount stay total by a named promo code.
// The policies live in a single table rather than scattered conditionals;
// the chosen percentages are recorded in DESIGN.md.
package discount

import (
	"time"

	"hotelier/internal/domain/reservation"
)

const (
	// CodeEmployee takes a flat 10% off any stay.
	CodeEmployee = "I_WORK_HERE"
	// CodeLongStay waives one night's rate on stays of five nights or more.
	CodeLongStay = "STAY4_GET1"
	// CodePayday takes 7% off stays that cover the 15th or 30th of a month.
	CodePayday = "PAYDAY"
)

type policy struct {
	factor         float64 // multiplier on the total, 1.0 = unchanged
	freeNights     int     // nights of the marked-up rate to subtract
	minNights      int     // stay length required for the policy to engage
	requiresPayday bool    // stay must include a day-of-month in paydays
}

var policies = map[string]policy{
	CodeEmployee: {factor: 0.90},
	CodeLongStay: {factor: 1.0, freeNights: 1, minNights: 5},
	CodePayday:   {factor: 0.93, requiresPayday: true},
}

var paydays = map[int]bool{15: true, 30: true}

// Result carries the adjusted total together with whether the code actually
// changed it. An unrecognized or non-qualifying code is a no-op, not an
// error; callers surface it as a warning at most.
type Result struct {
	Code    string
	Total   float64
	Applied bool
}

// Apply adjusts total for the given code. nightlyRate is the room's
// effective (marked-up, unmodified) rate, used by free-night policies.
func Apply(code string, total float64, stay reservation.Stay, nightlyRate float64) Result {
	p, ok := policies[code]
	if !ok {
		return Result{Code: code, Total: total}
	}
	if p.minNights > 0 && stay.Nights() < p.minNights {
		return Result{Code: code, Total: total}
	}
	if p.requiresPayday && !coversPayday(stay) {
		return Result{Code: code, Total: total}
	}

	adjusted := total * p.factor
	adjusted -= float64(p.freeNights) * nightlyRate
	if adjusted < 0 {
		adjusted = 0
	}
	return Result{Code: code, Total: adjusted, Applied: true}
}

// coversPayday walks every billed day of the stay, check-in inclusive and
// check-out exclusive.
func coversPayday(stay reservation.Stay) bool {
	found := false
	stay.EachNight(func(day time.Time) {
		if paydays[day.Day()] {
			found = true
		}
	})
	return found
}
