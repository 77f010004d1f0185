package extract

import (
	"reflect"
	"strings"
	"testing"
)

const sampleFNOL = `FIRST NOTICE OF LOSS

POLICY NUMBER: POL-2024-00931
NAME OF INSURED: Jane Doe
EFFECTIVE DATE: 2024-01-15

DATE OF LOSS: 01/02/2024
TIME: 14:30
LOCATION OF LOSS: Main St and 5th Ave
DESCRIPTION OF ACCIDENT: Rear-end collision
at low speed in stop-and-go traffic.

VIN: 1HGBH41JXMN109186
ESTIMATE AMOUNT: 4500
DESCRIBE DAMAGE: Rear bumper dented
CLAIM TYPE: Auto
`

func TestFieldExtractor_BasicExtraction(t *testing.T) {
	extractor := NewFieldExtractor("")
	claim := extractor.Extract(sampleFNOL)

	if claim.PolicyInfo.PolicyNumber == nil || *claim.PolicyInfo.PolicyNumber != "POL-2024-00931" {
		t.Errorf("Expected policy number POL-2024-00931, got %v", claim.PolicyInfo.PolicyNumber)
	}
	if claim.PolicyInfo.PolicyholderName == nil || *claim.PolicyInfo.PolicyholderName != "Jane Doe" {
		t.Errorf("Expected policyholder Jane Doe, got %v", claim.PolicyInfo.PolicyholderName)
	}
	if claim.PolicyInfo.EffectiveDate == nil || *claim.PolicyInfo.EffectiveDate != "2024-01-15" {
		t.Errorf("Expected effective date 2024-01-15, got %v", claim.PolicyInfo.EffectiveDate)
	}
	if claim.IncidentInfo.Time == nil || *claim.IncidentInfo.Time != "14:30" {
		t.Errorf("Expected time 14:30, got %v", claim.IncidentInfo.Time)
	}
	if claim.IncidentInfo.Location == nil || *claim.IncidentInfo.Location != "Main St and 5th Ave" {
		t.Errorf("Expected location Main St and 5th Ave, got %v", claim.IncidentInfo.Location)
	}
	if claim.AssetInfo.AssetID == nil || *claim.AssetInfo.AssetID != "1HGBH41JXMN109186" {
		t.Errorf("Expected VIN 1HGBH41JXMN109186, got %v", claim.AssetInfo.AssetID)
	}
	if claim.AssetInfo.EstimatedDamage != 4500 {
		t.Errorf("Expected estimated damage 4500, got %v", claim.AssetInfo.EstimatedDamage)
	}
	if claim.AssetInfo.DamageDescription == nil || *claim.AssetInfo.DamageDescription != "Rear bumper dented" {
		t.Errorf("Expected damage description, got %v", claim.AssetInfo.DamageDescription)
	}
	if claim.ClaimType != "auto" {
		t.Errorf("Expected claim type auto (lower-cased), got %q", claim.ClaimType)
	}
}

func TestFieldExtractor_MultilineDescription(t *testing.T) {
	extractor := NewFieldExtractor("")
	claim := extractor.Extract(sampleFNOL)

	if claim.IncidentInfo.Description == nil {
		t.Fatal("Expected description to be extracted")
	}
	desc := *claim.IncidentInfo.Description
	if !strings.Contains(desc, "Rear-end collision") || !strings.Contains(desc, "stop-and-go traffic") {
		t.Errorf("Expected multi-line description up to the blank line, got %q", desc)
	}
	if strings.Contains(desc, "VIN") {
		t.Errorf("Expected description capture to stop at the blank line, got %q", desc)
	}
}

func TestFieldExtractor_DateNormalization(t *testing.T) {
	extractor := NewFieldExtractor("")

	// DD/MM/YYYY is normalized to ISO-8601.
	claim := extractor.Extract("DATE OF LOSS: 01/02/2024\n")
	if claim.IncidentInfo.Date == nil || *claim.IncidentInfo.Date != "2024-02-01" {
		t.Errorf("Expected normalized date 2024-02-01, got %v", claim.IncidentInfo.Date)
	}

	// ISO dates pass through unchanged.
	claim = extractor.Extract("DATE OF LOSS: 2024-02-01\n")
	if claim.IncidentInfo.Date == nil || *claim.IncidentInfo.Date != "2024-02-01" {
		t.Errorf("Expected ISO date to pass through, got %v", claim.IncidentInfo.Date)
	}

	// Slash captures that are not calendar dates are kept verbatim.
	claim = extractor.Extract("DATE OF LOSS: 31/31/2024\n")
	if claim.IncidentInfo.Date == nil || *claim.IncidentInfo.Date != "31/31/2024" {
		t.Errorf("Expected non-calendar capture kept verbatim, got %v", claim.IncidentInfo.Date)
	}
}

func TestFieldExtractor_DerivedFields(t *testing.T) {
	extractor := NewFieldExtractor("")
	claim := extractor.Extract(sampleFNOL)

	if claim.AssetInfo.AssetType == nil || *claim.AssetInfo.AssetType != "vehicle" {
		t.Errorf("Expected asset type vehicle, got %v", claim.AssetInfo.AssetType)
	}
	if claim.InitialEstimate != claim.AssetInfo.EstimatedDamage {
		t.Errorf("Expected initial estimate %v to mirror estimated damage, got %v",
			claim.AssetInfo.EstimatedDamage, claim.InitialEstimate)
	}
	if claim.Claimant == nil || claim.Claimant.Name == nil || *claim.Claimant.Name != "Jane Doe" {
		t.Errorf("Expected claimant populated from policyholder name, got %v", claim.Claimant)
	}
}

func TestFieldExtractor_EmptyInputDefaults(t *testing.T) {
	extractor := NewFieldExtractor("")
	claim := extractor.Extract("")

	if claim.PolicyInfo == nil || claim.IncidentInfo == nil || claim.AssetInfo == nil {
		t.Fatal("Expected non-nil substructures for empty input")
	}
	if claim.PolicyInfo.PolicyNumber != nil {
		t.Errorf("Expected nil policy number, got %v", *claim.PolicyInfo.PolicyNumber)
	}
	if claim.AssetInfo.EstimatedDamage != 0 {
		t.Errorf("Expected zero damage, got %v", claim.AssetInfo.EstimatedDamage)
	}
	if claim.ClaimType != "auto" {
		t.Errorf("Expected default claim type auto, got %q", claim.ClaimType)
	}
	if claim.Claimant != nil {
		t.Errorf("Expected no claimant without a policyholder name, got %v", claim.Claimant)
	}
	if claim.ThirdParties == nil || len(claim.ThirdParties) != 0 {
		t.Errorf("Expected empty third-party list, got %v", claim.ThirdParties)
	}
}

func TestFieldExtractor_BoilerplateRejection(t *testing.T) {
	extractor := NewFieldExtractor("")

	cases := []struct {
		name string
		text string
	}{
		{"page marker", "LOCATION OF LOSS: Page 3 of ACORD form\n"},
		{"copyright", "LOCATION OF LOSS: Copyright 2020 Insurer Inc\n"},
		{"copyright sign", "LOCATION OF LOSS: © 2020 Insurer Inc\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claim := extractor.Extract(tc.text)
			if claim.IncidentInfo.Location != nil {
				t.Errorf("Expected boilerplate value to be treated as absent, got %q", *claim.IncidentInfo.Location)
			}
		})
	}
}

func TestFieldExtractor_EmptyValueTreatedAsAbsent(t *testing.T) {
	extractor := NewFieldExtractor("")
	claim := extractor.Extract("POLICY NUMBER:   \t \nNAME OF INSURED: Jane Doe\n")

	if claim.PolicyInfo.PolicyNumber != nil {
		t.Errorf("Expected empty-after-trim value to be absent, got %q", *claim.PolicyInfo.PolicyNumber)
	}
	if claim.PolicyInfo.PolicyholderName == nil {
		t.Error("Expected policyholder name on the following line to still match")
	}
}

func TestFieldExtractor_AmountParsing(t *testing.T) {
	extractor := NewFieldExtractor("")

	claim := extractor.Extract("ESTIMATE AMOUNT: 12,500.75\n")
	if claim.AssetInfo.EstimatedDamage != 12500.75 {
		t.Errorf("Expected 12500.75, got %v", claim.AssetInfo.EstimatedDamage)
	}

	// A non-numeric amount never matches, so damage stays at the zero default.
	claim = extractor.Extract("ESTIMATE AMOUNT: unknown\n")
	if claim.AssetInfo.EstimatedDamage != 0 {
		t.Errorf("Expected unparseable amount coerced to 0, got %v", claim.AssetInfo.EstimatedDamage)
	}
}

func TestFieldExtractor_CaseInsensitiveLabels(t *testing.T) {
	extractor := NewFieldExtractor("")
	claim := extractor.Extract("policy number: ABC123\nclaim type: Injury\n")

	if claim.PolicyInfo.PolicyNumber == nil || *claim.PolicyInfo.PolicyNumber != "ABC123" {
		t.Errorf("Expected lower-case label to match, got %v", claim.PolicyInfo.PolicyNumber)
	}
	if claim.ClaimType != "injury" {
		t.Errorf("Expected claim type lower-cased to injury, got %q", claim.ClaimType)
	}
}

func TestFieldExtractor_Idempotence(t *testing.T) {
	extractor := NewFieldExtractor("")

	first := extractor.Extract(sampleFNOL)
	second := extractor.Extract(sampleFNOL)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical ClaimData for identical input text")
	}
}

func TestFieldExtractor_CredentialDoesNotChangeBehavior(t *testing.T) {
	plain := NewFieldExtractor("")
	withCredential := NewFieldExtractor("sk-test-credential")

	if !reflect.DeepEqual(plain.Extract(sampleFNOL), withCredential.Extract(sampleFNOL)) {
		t.Error("Expected the credential hook to have no effect on extraction")
	}
}
