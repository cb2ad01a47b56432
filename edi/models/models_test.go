package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ModelsTestSuite struct {
	suite.Suite
}

func TestModelsTestSuite(t *testing.T) {
	suite.Run(t, new(ModelsTestSuite))
}

func baseClaim() ClaimDocument {
	return ClaimDocument{
		ClaimReference: "26463774",
		Patient: Patient{
			LastName:     "SMITH",
			FirstName:    "TED",
			BirthDate:    time.Date(1973, time.May, 1, 0, 0, 0, 0, time.UTC),
			Gender:       "M",
			Relationship: "19",
			Address:      Address{Street: "236 N MAIN ST", City: "MIAMI", State: "FL", Zip: "33413"},
		},
		Insured: Insured{
			InsuranceType:        "12",
			SubscriberID:         "2222-SJ",
			LastName:             "SMITH",
			FirstName:            "JANE",
			Address:              Address{Street: "236 N MAIN ST", City: "MIAMI", State: "FL", Zip: "33413"},
			ClaimFilingIndicator: "MB",
		},
		BillingProvider: BillingProvider{
			Name:    "PREMIER BILLING SERVICE",
			Address: Address{Street: "234 SEAWAY ST", City: "MIAMI", State: "FL", Zip: "33111"},
			Phone:   "3055552222",
			NPI:     "1234567890",
		},
		Services: []ServiceLine{
			{
				From:              time.Date(2024, time.July, 16, 0, 0, 0, 0, time.UTC),
				To:                time.Date(2024, time.July, 16, 0, 0, 0, 0, time.UTC),
				Place:             "11",
				Procedure:         "99213",
				Modifiers:         []string{"GT"},
				Charge:            "150.00",
				Units:             "1",
				RenderingProvider: "9876543210",
			},
		},
		DiagnosisCodes:      []string{"J020", "Z1159"},
		AuthorizationNumber: "0923",
		FederalTaxID:        "587654321",
		TotalCharge:         "150.00",
		AmountPaid:          "0",
	}
}

func (s *ModelsTestSuite) TestMergeReplacesOnlySuppliedFields() {
	claim := baseClaim()
	newProvider := BillingProvider{Name: "NEW BILLING SERVICE"}

	merged := claim.Merge(ClaimUpdate{BillingProvider: &newProvider})

	assert.Equal(s.T(), "NEW BILLING SERVICE", merged.BillingProvider.Name)
	// Wholesale replacement: fields absent from the update are cleared.
	assert.Empty(s.T(), merged.BillingProvider.NPI)
	assert.Empty(s.T(), merged.BillingProvider.Phone)

	// Everything else is untouched.
	assert.Equal(s.T(), claim.Patient, merged.Patient)
	assert.Equal(s.T(), claim.Insured, merged.Insured)
	assert.Equal(s.T(), claim.Services, merged.Services)
	assert.Equal(s.T(), claim.DiagnosisCodes, merged.DiagnosisCodes)

	// The receiver keeps its original provider.
	assert.Equal(s.T(), "PREMIER BILLING SERVICE", claim.BillingProvider.Name)
}

func (s *ModelsTestSuite) TestMergeScalars() {
	claim := baseClaim()
	charge := "300.00"
	auth := "1111"

	merged := claim.Merge(ClaimUpdate{TotalCharge: &charge, AuthorizationNumber: &auth})

	assert.Equal(s.T(), "300.00", merged.TotalCharge)
	assert.Equal(s.T(), "1111", merged.AuthorizationNumber)
	assert.Equal(s.T(), "150.00", claim.TotalCharge)
	assert.Equal(s.T(), claim.FederalTaxID, merged.FederalTaxID)
}

func (s *ModelsTestSuite) TestMergeEmptyUpdateIsIdentity() {
	claim := baseClaim()
	merged := claim.Merge(ClaimUpdate{})
	assert.Equal(s.T(), claim, merged)
}

func (s *ModelsTestSuite) TestMergeServicesDoNotShareBackingArrays() {
	claim := baseClaim()
	update := []ServiceLine{{Procedure: "97110", Modifiers: []string{"59"}}}

	merged := claim.Merge(ClaimUpdate{Services: update})
	update[0].Procedure = "MUTATED"
	update[0].Modifiers[0] = "MUTATED"

	assert.Equal(s.T(), "97110", merged.Services[0].Procedure)
	assert.Equal(s.T(), "59", merged.Services[0].Modifiers[0])
}

func (s *ModelsTestSuite) TestCloneIsDeepForSlices() {
	claim := baseClaim()
	clone := claim.Clone()

	clone.Services[0].Modifiers[0] = "XX"
	clone.DiagnosisCodes[0] = "XX"

	assert.Equal(s.T(), "GT", claim.Services[0].Modifiers[0])
	assert.Equal(s.T(), "J020", claim.DiagnosisCodes[0])
}
