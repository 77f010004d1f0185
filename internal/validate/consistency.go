// Package validate inspects a populated claim for logical contradictions.
package validate

import (
	"time"

	"github.com/pkarlsen/fnoltriage/internal/model"
)

// Inconsistency messages are fixed strings consumed by human reviewers.
const (
	MsgIncidentDateInFuture    = "Incident date is in the future."
	MsgEffectiveAfterIncident  = "Policy effective date is after incident date."
	MsgDamageDescribedZeroCost = "Damage described but estimated damage is zero."
)

// isoDateLayout is the only accepted calendar-date form. Anything else
// fails parsing for that check only.
const isoDateLayout = "2006-01-02"

// nowFunc is the clock used for the future-date check (injectable for tests).
var nowFunc = time.Now

// Checker detects logical contradictions within a single claim. All checks
// run independently; a date that fails to parse silently disables the
// checks that need it and nothing else.
type Checker struct{}

// NewChecker creates a consistency checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Check returns the ordered list of detected inconsistencies. It never
// fails: the result for a clean claim is an empty, non-nil list.
func (c *Checker) Check(claim *model.ClaimData) []string {
	issues := []string{}

	incidentDate, incidentOK := parseISODate(claim.IncidentInfo.Date)

	if incidentOK && incidentDate.After(nowFunc()) {
		issues = append(issues, MsgIncidentDateInFuture)
	}

	if effectiveDate, ok := parseISODate(claim.PolicyInfo.EffectiveDate); ok && incidentOK {
		if effectiveDate.After(incidentDate) {
			issues = append(issues, MsgEffectiveAfterIncident)
		}
	}

	if claim.AssetInfo.DamageDescription != nil && *claim.AssetInfo.DamageDescription != "" &&
		claim.AssetInfo.EstimatedDamage == 0 {
		issues = append(issues, MsgDamageDescribedZeroCost)
	}

	return issues
}

func parseISODate(value *string) (time.Time, bool) {
	if value == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(isoDateLayout, *value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
