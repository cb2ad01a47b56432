package testUtils

import (
	"crypto/rand"
	"fmt"
	"log"
	"testing"
	"time"

	"github.com/araguma/elderplan-edi/conf"
	"github.com/araguma/elderplan-edi/edi/models"
)

// SampleClaim returns a fully populated professional claim suitable for
// serialization tests. Callers may mutate the returned value freely.
func SampleClaim() models.ClaimDocument {
	return models.ClaimDocument{
		ClaimReference: "26463774",
		Patient: models.Patient{
			LastName:     "SMITH",
			FirstName:    "TED",
			BirthDate:    time.Date(1973, time.May, 1, 0, 0, 0, 0, time.UTC),
			Gender:       "M",
			Relationship: "19",
			Address: models.Address{
				Street: "236 N MAIN ST",
				City:   "MIAMI",
				State:  "FL",
				Zip:    "33413",
			},
		},
		Insured: models.Insured{
			InsuranceType: "12",
			SubscriberID:  "2222-SJ",
			LastName:      "SMITH",
			FirstName:     "JANE",
			Address: models.Address{
				Street: "236 N MAIN ST",
				City:   "MIAMI",
				State:  "FL",
				Zip:    "33413",
			},
			ClaimFilingIndicator: "MB",
		},
		BillingProvider: models.BillingProvider{
			Name: "PREMIER BILLING SERVICE",
			Address: models.Address{
				Street: "234 SEAWAY ST",
				City:   "MIAMI",
				State:  "FL",
				Zip:    "33111",
			},
			Phone: "3055552222",
			NPI:   "1234567890",
		},
		Services: []models.ServiceLine{
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

// SampleServiceLine returns one additional valid service line for tests that
// need multi-line claims.
func SampleServiceLine(procedure string) models.ServiceLine {
	return models.ServiceLine{
		From:              time.Date(2024, time.July, 17, 0, 0, 0, 0, time.UTC),
		To:                time.Date(2024, time.July, 17, 0, 0, 0, 0, time.UTC),
		Place:             "11",
		Procedure:         procedure,
		Charge:            "75.00",
		Units:             "1",
		RenderingProvider: "9876543210",
	}
}

// RandomHexID returns a random 32 character hex string.
func RandomHexID() string {
	b, err := someRandomBytes(16)
	if err != nil {
		log.Fatal(err)
	}
	return fmt.Sprintf("%x", b)
}

func someRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func setEnv(why, key, value string) {
	if err := conf.SetEnv(&testing.T{}, key, value); err != nil {
		log.Printf("Error %s env value %s to %s\n", why, key, value)
	}
}

// SetAndRestoreEnvKey replaces the current value of the env var key,
// returning a function which can be used to restore the original value
func SetAndRestoreEnvKey(key, value string) func() {
	originalValue := conf.GetEnv(key)
	setEnv("setting", key, value)
	return func() {
		setEnv("restoring", key, originalValue)
	}
}
