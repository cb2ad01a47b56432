package models

import "time"

// Address is embedded by whichever entity owns it; it has no independent
// lifecycle.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Patient is the person who received the services. The patient may be the
// same natural person as the insured but is always serialized as a distinct
// hierarchical entity.
type Patient struct {
	LastName   string    `json:"lastName"`
	FirstName  string    `json:"firstName"`
	MiddleName string    `json:"middleName"`
	BirthDate  time.Time `json:"birthDate"`
	Gender     string    `json:"gender"`
	Address    Address   `json:"address"`
	// Relationship of the patient to the subscriber, e.g. "19" for child.
	Relationship string `json:"relationship"`
}

// Insured is the subscriber of the policy the claim is billed against.
type Insured struct {
	InsuranceType        string  `json:"insuranceType"`
	SubscriberID         string  `json:"subscriberId"`
	LastName             string  `json:"lastName"`
	FirstName            string  `json:"firstName"`
	MiddleName           string  `json:"middleName"`
	Address              Address `json:"address"`
	ClaimFilingIndicator string  `json:"claimFilingIndicator"`
}

// BillingProvider owns the submitter and billing-provider loops.
type BillingProvider struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
	Phone   string  `json:"phone"`
	NPI     string  `json:"npi"`
}

// ServiceLine is one billed service. Modifier order is significant; the
// modifiers are appended in order into the procedure composite. Monetary
// amounts and unit counts stay strings since they are emitted verbatim.
type ServiceLine struct {
	From              time.Time `json:"from"`
	To                time.Time `json:"to"`
	Place             string    `json:"place"`
	Procedure         string    `json:"procedure"`
	Modifiers         []string  `json:"modifiers"`
	Charge            string    `json:"charge"`
	Units             string    `json:"units"`
	RenderingProvider string    `json:"renderingProvider"`
}

// ClaimDocument is the root aggregate for one professional claim. A claim
// must have at least one service line; DiagnosisCodes position 1 is the
// principal diagnosis and positions beyond the HI segment cap are dropped at
// serialization.
type ClaimDocument struct {
	ClaimReference      string          `json:"claimReference"`
	Patient             Patient         `json:"patient"`
	Insured             Insured         `json:"insured"`
	BillingProvider     BillingProvider `json:"billingProvider"`
	Services            []ServiceLine   `json:"services"`
	DiagnosisCodes      []string        `json:"diagnosisCodes"`
	AuthorizationNumber string          `json:"authorizationNumber"`
	FederalTaxID        string          `json:"federalTaxId"`
	TotalCharge         string          `json:"totalCharge"`
	AmountPaid          string          `json:"amountPaid"`
}

// ClaimUpdate carries replacement values for top-level fields of a
// ClaimDocument. A nil field keeps the current value. Nested objects are
// replaced wholesale: supplying a BillingProvider with only the name set
// clears its other fields. This is a hard rule, not a deep merge.
type ClaimUpdate struct {
	ClaimReference      *string          `json:"claimReference"`
	Patient             *Patient         `json:"patient"`
	Insured             *Insured         `json:"insured"`
	BillingProvider     *BillingProvider `json:"billingProvider"`
	Services            []ServiceLine    `json:"services"`
	DiagnosisCodes      []string         `json:"diagnosisCodes"`
	AuthorizationNumber *string          `json:"authorizationNumber"`
	FederalTaxID        *string          `json:"federalTaxId"`
	TotalCharge         *string          `json:"totalCharge"`
	AmountPaid          *string          `json:"amountPaid"`
}

// Merge returns a new ClaimDocument combining the receiver with the supplied
// update. The receiver is never modified.
func (c ClaimDocument) Merge(u ClaimUpdate) ClaimDocument {
	next := c.Clone()

	if u.ClaimReference != nil {
		next.ClaimReference = *u.ClaimReference
	}
	if u.Patient != nil {
		next.Patient = *u.Patient
	}
	if u.Insured != nil {
		next.Insured = *u.Insured
	}
	if u.BillingProvider != nil {
		next.BillingProvider = *u.BillingProvider
	}
	if u.Services != nil {
		next.Services = cloneServices(u.Services)
	}
	if u.DiagnosisCodes != nil {
		next.DiagnosisCodes = append([]string(nil), u.DiagnosisCodes...)
	}
	if u.AuthorizationNumber != nil {
		next.AuthorizationNumber = *u.AuthorizationNumber
	}
	if u.FederalTaxID != nil {
		next.FederalTaxID = *u.FederalTaxID
	}
	if u.TotalCharge != nil {
		next.TotalCharge = *u.TotalCharge
	}
	if u.AmountPaid != nil {
		next.AmountPaid = *u.AmountPaid
	}

	return next
}

// Clone returns a copy of the claim whose slices do not share backing arrays
// with the receiver.
func (c ClaimDocument) Clone() ClaimDocument {
	next := c
	next.Services = cloneServices(c.Services)
	if c.DiagnosisCodes != nil {
		next.DiagnosisCodes = append([]string(nil), c.DiagnosisCodes...)
	}
	return next
}

func cloneServices(services []ServiceLine) []ServiceLine {
	if services == nil {
		return nil
	}
	next := make([]ServiceLine, len(services))
	for i, s := range services {
		next[i] = s
		if s.Modifiers != nil {
			next[i].Modifiers = append([]string(nil), s.Modifiers...)
		}
	}
	return next
}
