package generator

import (
	"fmt"

	ediErrors "github.com/araguma/elderplan-edi/edi/errors"
	"github.com/araguma/elderplan-edi/edi/models"
)

// Validate runs the pre-serialization required-field pass over the held
// claim. Every failure is collected so the caller sees the full field list in
// one round.
func (g *Generator837P) Validate() error {
	return ValidateClaim(g.claim)
}

// ValidateClaim enumerates the fields each emitted segment requires. Optional
// fields are allowed to be empty; they still occupy their positional slots
// when serialized.
func ValidateClaim(claim models.ClaimDocument) error {
	var errs []error

	required := func(value, field string) {
		if value == "" {
			errs = append(errs, &ediErrors.RequiredFieldError{Field: field})
		}
	}

	required(claim.ClaimReference, "claimReference")
	required(claim.FederalTaxID, "federalTaxId")
	required(claim.TotalCharge, "totalCharge")

	required(claim.BillingProvider.Name, "billingProvider.name")
	required(claim.BillingProvider.NPI, "billingProvider.npi")

	required(claim.Insured.SubscriberID, "insured.subscriberId")
	required(claim.Insured.LastName, "insured.lastName")

	required(claim.Patient.LastName, "patient.lastName")
	required(claim.Patient.Gender, "patient.gender")
	required(claim.Patient.Relationship, "patient.relationship")
	if claim.Patient.BirthDate.IsZero() {
		errs = append(errs, &ediErrors.RequiredFieldError{Field: "patient.birthDate"})
	}

	if len(claim.Services) == 0 {
		errs = append(errs, &ediErrors.RequiredFieldError{Field: "services"})
	}
	for i, svc := range claim.Services {
		path := func(field string) string { return fmt.Sprintf("services[%d].%s", i, field) }
		required(svc.Procedure, path("procedure"))
		required(svc.Charge, path("charge"))
		required(svc.Units, path("units"))
		required(svc.Place, path("place"))
		required(svc.RenderingProvider, path("renderingProvider"))
		if svc.From.IsZero() {
			errs = append(errs, &ediErrors.RequiredFieldError{Field: path("from")})
		}
		if svc.To.IsZero() {
			errs = append(errs, &ediErrors.RequiredFieldError{Field: path("to")})
		}
	}

	if len(errs) > 0 {
		return &ediErrors.ValidationError{Errs: errs, Msg: "claim cannot be serialized"}
	}
	return nil
}
