// Package route computes the triage decision for an extracted claim:
// which mandatory fields are missing, and which work queue the claim
// should land in.
package route

import (
	"fmt"
	"strings"

	"github.com/pkarlsen/fnoltriage/internal/model"
)

// Route labels are the exhaustive set of workflow queues a claim can be
// assigned to.
const (
	RouteManualReview       = "Manual Review"
	RouteInvestigation      = "Investigation"
	RouteSpecialistQueue    = "Specialist Queue"
	RouteFastTrack          = "Fast-track"
	RouteStandardProcessing = "Standard Processing"
)

// fastTrackThreshold is the estimated-damage ceiling for Fast-track routing.
const fastTrackThreshold = 25000

// fraudKeywords trigger Investigation routing when present anywhere in the
// case-folded incident description.
var fraudKeywords = []string{"fraud", "inconsistent", "staged"}

// mandatoryField pairs the reported field name with a typed accessor into
// the claim graph. Accessors return ok=false when any intermediate
// structure is nil, so traversal never panics on a malformed claim.
type mandatoryField struct {
	name string
	get  func(c *model.ClaimData) (string, bool)
}

// mandatoryFields is the fixed contract of fields whose absence forces
// Manual Review. Order matters: missing fields are reported in this order.
var mandatoryFields = []mandatoryField{
	{"policy_number", func(c *model.ClaimData) (string, bool) {
		if c.PolicyInfo == nil || c.PolicyInfo.PolicyNumber == nil {
			return "", false
		}
		return *c.PolicyInfo.PolicyNumber, true
	}},
	{"policyholder_name", func(c *model.ClaimData) (string, bool) {
		if c.PolicyInfo == nil || c.PolicyInfo.PolicyholderName == nil {
			return "", false
		}
		return *c.PolicyInfo.PolicyholderName, true
	}},
	{"date", func(c *model.ClaimData) (string, bool) {
		if c.IncidentInfo == nil || c.IncidentInfo.Date == nil {
			return "", false
		}
		return *c.IncidentInfo.Date, true
	}},
	{"location", func(c *model.ClaimData) (string, bool) {
		if c.IncidentInfo == nil || c.IncidentInfo.Location == nil {
			return "", false
		}
		return *c.IncidentInfo.Location, true
	}},
	{"description", func(c *model.ClaimData) (string, bool) {
		if c.IncidentInfo == nil || c.IncidentInfo.Description == nil {
			return "", false
		}
		return *c.IncidentInfo.Description, true
	}},
}

// FindMissingFields returns the names of mandatory fields that are absent
// or empty, in the fixed contract order. The result is non-nil.
func FindMissingFields(claim *model.ClaimData) []string {
	missing := []string{}
	for _, f := range mandatoryFields {
		value, ok := f.get(claim)
		if !ok || strings.TrimSpace(value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// DetermineRoute picks exactly one route for the claim, evaluating rules
// strictly in priority order: missing mandatory fields, fraud keywords,
// injury claim type, low damage, then the default queue. The
// inconsistencies list rides along for the human reviewer; it does not
// drive the decision.
func DetermineRoute(claim *model.ClaimData, missingFields, inconsistencies []string) (string, string) {
	if len(missingFields) > 0 {
		return RouteManualReview,
			fmt.Sprintf("Mandatory fields are missing: %v", missingFields)
	}

	description := ""
	if claim.IncidentInfo != nil && claim.IncidentInfo.Description != nil {
		description = strings.ToLower(*claim.IncidentInfo.Description)
	}
	for _, keyword := range fraudKeywords {
		if strings.Contains(description, keyword) {
			return RouteInvestigation,
				"Fraud-related keywords detected in claim description."
		}
	}

	if strings.EqualFold(claim.ClaimType, "injury") {
		return RouteSpecialistQueue,
			"Injury-related claim requires specialist handling."
	}

	if claim.AssetInfo != nil && claim.AssetInfo.EstimatedDamage < fastTrackThreshold {
		return RouteFastTrack,
			"Estimated damage is below 25,000."
	}

	return RouteStandardProcessing,
		"Claim does not meet any special routing criteria."
}
