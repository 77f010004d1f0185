package model

// PolicyInfo holds the policy-level fields extracted from an FNOL document.
// A nil field means the document did not yield a value, not that the value
// is invalid.
type PolicyInfo struct {
	PolicyNumber     *string `json:"policy_number"`
	PolicyholderName *string `json:"policyholder_name"`
	EffectiveDate    *string `json:"effective_date"` // ISO-8601 (YYYY-MM-DD) once normalized
}

// IncidentInfo describes the loss event itself.
type IncidentInfo struct {
	Date        *string `json:"date"` // ISO-8601 (YYYY-MM-DD) once normalized
	Time        *string `json:"time"` // free-form, e.g. "14:30"
	Location    *string `json:"location"`
	Description *string `json:"description"` // possibly multi-line
}

// InvolvedParty is a person connected to the claim (claimant or third party).
type InvolvedParty struct {
	Name           *string `json:"name"`
	ContactDetails *string `json:"contact_details"`
}

// AssetInfo describes the damaged asset. EstimatedDamage is never negative;
// an absent or unparseable amount is coerced to 0, never left unset.
type AssetInfo struct {
	AssetType         *string `json:"asset_type"`
	AssetID           *string `json:"asset_id"` // e.g. VIN
	EstimatedDamage   float64 `json:"estimated_damage"`
	DamageDescription *string `json:"damage_description"`
}

// ClaimData is the aggregate claim record produced by field extraction.
// PolicyInfo, IncidentInfo and AssetInfo are always non-nil on instances
// built through NewClaimData; individual fields within them may be nil.
// A ClaimData is built once per document and never mutated afterwards;
// the checker and router only read it.
type ClaimData struct {
	PolicyInfo         *PolicyInfo     `json:"policy_info"`
	IncidentInfo       *IncidentInfo   `json:"incident_info"`
	Claimant           *InvolvedParty  `json:"claimant"`
	ThirdParties       []InvolvedParty `json:"third_parties"`
	AssetInfo          *AssetInfo      `json:"asset_info"`
	ClaimType          string          `json:"claim_type"` // always lower-case, defaults to "auto"
	AttachmentsPresent bool            `json:"attachments_present"`
	InitialEstimate    float64         `json:"initial_estimate"` // mirrors AssetInfo.EstimatedDamage at creation
}

// NewClaimData returns a ClaimData with all substructures allocated and
// defaults applied.
func NewClaimData() *ClaimData {
	return &ClaimData{
		PolicyInfo:   &PolicyInfo{},
		IncidentInfo: &IncidentInfo{},
		AssetInfo:    &AssetInfo{},
		ThirdParties: []InvolvedParty{},
		ClaimType:    "auto",
	}
}
