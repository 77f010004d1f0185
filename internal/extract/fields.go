package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkarlsen/fnoltriage/internal/model"
)

// fieldRule binds a labeled-field pattern to the claim field it populates.
// Each rule writes a disjoint field, so evaluation order never affects the
// extracted result.
type fieldRule struct {
	name string // dotted destination path, for diagnostics
	re   *regexp.Regexp
	set  func(c *model.ClaimData, value string)
}

// Label anchors are case-insensitive. Single-line values capture the rest
// of the line; constrained values (dates, time, VIN, amount) capture a
// narrow token; the accident description captures everything up to the
// next blank line or end of document.
var (
	rePolicyNumber  = regexp.MustCompile(`(?i)POLICY NUMBER:[ \t]*(.+)`)
	reInsuredName   = regexp.MustCompile(`(?i)NAME OF INSURED:[ \t]*(.+)`)
	reEffectiveDate = regexp.MustCompile(`(?i)EFFECTIVE DATE:[ \t]*(\d{2}/\d{2}/\d{4}|\d{4}-\d{2}-\d{2})`)
	reLossDate      = regexp.MustCompile(`(?i)DATE OF LOSS:[ \t]*(\d{2}/\d{2}/\d{4}|\d{4}-\d{2}-\d{2})`)
	reLossTime      = regexp.MustCompile(`(?i)TIME:[ \t]*([0-9:APM]+)`)
	reLossLocation  = regexp.MustCompile(`(?i)LOCATION OF LOSS:[ \t]*(.+)`)
	reDescription   = regexp.MustCompile(`(?i)DESCRIPTION OF ACCIDENT:[ \t]*([\s\S]*?)(?:\n[ \t]*\n|$)`)
	reVIN           = regexp.MustCompile(`(?i)VIN:[ \t]*(\S+)`)
	reAmount        = regexp.MustCompile(`(?i)ESTIMATE AMOUNT:[ \t]*([0-9][0-9,]*(?:\.[0-9]+)?)`)
	reDamageDesc    = regexp.MustCompile(`(?i)DESCRIBE DAMAGE:[ \t]*(.+)`)
	reClaimType     = regexp.MustCompile(`(?i)CLAIM TYPE:[ \t]*(\w+)`)
)

// boilerplateMarkers reject values that matched form boilerplate (footers,
// page markers, copyright lines) rather than real data.
var boilerplateMarkers = []string{"acord", "page", "©", "copyright"}

// FieldExtractor turns raw FNOL document text into a ClaimData using an
// ordered set of labeled-field rules. Extraction is a pure function of the
// input text: it never fails, and every field defaults to nil or zero when
// its pattern does not match.
type FieldExtractor struct {
	rules []fieldRule

	// credential is an optional key for a future assisted-extraction
	// backend. It is intentionally unused on the deterministic path.
	credential string
}

// NewFieldExtractor creates a rule-based field extractor. credential may be
// empty; it never changes extraction behavior.
func NewFieldExtractor(credential string) *FieldExtractor {
	return &FieldExtractor{
		credential: credential,
		rules: []fieldRule{
			{"policy_info.policy_number", rePolicyNumber, func(c *model.ClaimData, v string) {
				c.PolicyInfo.PolicyNumber = &v
			}},
			{"policy_info.policyholder_name", reInsuredName, func(c *model.ClaimData, v string) {
				c.PolicyInfo.PolicyholderName = &v
			}},
			{"policy_info.effective_date", reEffectiveDate, func(c *model.ClaimData, v string) {
				v = normalizeDate(v)
				c.PolicyInfo.EffectiveDate = &v
			}},
			{"incident_info.date", reLossDate, func(c *model.ClaimData, v string) {
				v = normalizeDate(v)
				c.IncidentInfo.Date = &v
			}},
			{"incident_info.time", reLossTime, func(c *model.ClaimData, v string) {
				c.IncidentInfo.Time = &v
			}},
			{"incident_info.location", reLossLocation, func(c *model.ClaimData, v string) {
				c.IncidentInfo.Location = &v
			}},
			{"incident_info.description", reDescription, func(c *model.ClaimData, v string) {
				c.IncidentInfo.Description = &v
			}},
			{"asset_info.asset_id", reVIN, func(c *model.ClaimData, v string) {
				c.AssetInfo.AssetID = &v
			}},
			{"asset_info.estimated_damage", reAmount, func(c *model.ClaimData, v string) {
				c.AssetInfo.EstimatedDamage = parseAmount(v)
			}},
			{"asset_info.damage_description", reDamageDesc, func(c *model.ClaimData, v string) {
				c.AssetInfo.DamageDescription = &v
			}},
			{"claim_type", reClaimType, func(c *model.ClaimData, v string) {
				c.ClaimType = strings.ToLower(v)
			}},
		},
	}
}

// Extract produces a ClaimData from raw document text. The returned claim
// always has non-nil policy, incident and asset substructures.
func (e *FieldExtractor) Extract(text string) *model.ClaimData {
	claim := model.NewClaimData()

	for _, r := range e.rules {
		value, ok := e.search(r.re, text)
		if !ok {
			continue
		}
		r.set(claim, value)
	}

	// Derived fields. Single-domain assumption: every claim is about a
	// vehicle.
	assetType := "vehicle"
	claim.AssetInfo.AssetType = &assetType
	claim.InitialEstimate = claim.AssetInfo.EstimatedDamage

	if claim.PolicyInfo.PolicyholderName != nil {
		name := *claim.PolicyInfo.PolicyholderName
		claim.Claimant = &model.InvolvedParty{Name: &name}
	}

	return claim
}

// search applies one rule pattern and the shared boilerplate filter.
// It returns false for no match, an empty-after-trim capture, or a value
// containing a boilerplate marker.
func (e *FieldExtractor) search(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	value := strings.TrimSpace(m[1])
	if value == "" {
		return "", false
	}

	lower := strings.ToLower(value)
	for _, marker := range boilerplateMarkers {
		if strings.Contains(lower, marker) {
			return "", false
		}
	}

	return value, true
}

// normalizeDate converts a DD/MM/YYYY capture to ISO-8601 so downstream
// date comparisons can parse it. Values already in ISO form, or slash dates
// that do not form a calendar date, pass through unchanged.
func normalizeDate(value string) string {
	if !strings.Contains(value, "/") {
		return value
	}
	t, err := time.Parse("02/01/2006", value)
	if err != nil {
		return value
	}
	return t.Format("2006-01-02")
}

// parseAmount parses the captured damage amount, coercing anything
// unparseable or negative to 0.
func parseAmount(value string) float64 {
	value = strings.ReplaceAll(value, ",", "")
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}
