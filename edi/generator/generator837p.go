// Package generator maps a professional claim onto the segment sequence of an
// ANSI X12 837P (005010X222A1) transaction. It owns segment order, the fixed
// hierarchical tree, and the positional layout of every segment it emits; the
// x12 package owns delimiters and envelope trailers.
package generator

import (
	"strconv"
	"strings"
	"time"

	"github.com/araguma/elderplan-edi/edi/constants"
	"github.com/araguma/elderplan-edi/edi/edidate"
	"github.com/araguma/elderplan-edi/edi/models"
	"github.com/araguma/elderplan-edi/edi/utils"
	"github.com/araguma/elderplan-edi/edi/x12"
)

// Generator837P serializes one claim. Instances are not safe for concurrent
// use; create one per claim-generation request.
type Generator837P struct {
	claim models.ClaimDocument
	clock func() time.Time

	interchangeControl string
	groupControl       string
	transactionControl string

	receiverName string
	receiverID   string
}

// Option configures a Generator837P.
type Option func(*Generator837P)

// WithClock injects the time source used for the header date/time tokens.
// Serialization is deterministic once the clock is fixed.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator837P) {
		g.clock = clock
	}
}

// WithTimestamp pins the header date/time tokens to a single moment.
func WithTimestamp(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

// WithControlNumbers overrides the envelope control numbers. Empty values
// keep the defaults.
func WithControlNumbers(interchange, group, transaction string) Option {
	return func(g *Generator837P) {
		if interchange != "" {
			g.interchangeControl = interchange
		}
		if group != "" {
			g.groupControl = group
		}
		if transaction != "" {
			g.transactionControl = transaction
		}
	}
}

// WithReceiver overrides the fixed destination payer identity.
func WithReceiver(name, id string) Option {
	return func(g *Generator837P) {
		if name != "" {
			g.receiverName = name
		}
		if id != "" {
			g.receiverID = id
		}
	}
}

// New837P builds a generator holding its own copy of the claim.
func New837P(claim models.ClaimDocument, opts ...Option) *Generator837P {
	g := &Generator837P{
		claim:              claim.Clone(),
		clock:              time.Now,
		interchangeControl: constants.DefaultInterchangeControlNumber,
		groupControl:       constants.DefaultGroupControlNumber,
		transactionControl: constants.DefaultTransactionControlNumber,
		receiverName:       constants.DefaultReceiverName,
		receiverID:         constants.DefaultReceiverID,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Update replaces the supplied top-level fields of the held claim. Nested
// objects are replaced wholesale; see models.ClaimUpdate.
func (g *Generator837P) Update(u models.ClaimUpdate) {
	g.claim = g.claim.Merge(u)
}

// Claim returns a copy of the claim the generator currently holds.
func (g *Generator837P) Claim() models.ClaimDocument {
	return g.claim.Clone()
}

// Serialize validates the claim and renders the complete transaction text.
// No text is produced when validation fails.
func (g *Generator837P) Serialize() (string, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}

	now := g.clock()
	claim := g.claim
	delims := x12.DefaultDelimiters()

	doc := x12.NewDocument(g.interchangeHeader(now, delims), delims)
	grp := doc.AddFunctionalGroup([]string{
		constants.FunctionalIDHealthCareClaim,
		claim.FederalTaxID,
		g.receiverID,
		edidate.CCYYMMDD(now),
		edidate.HHMM(now),
		g.groupControl,
		constants.ResponsibleAgencyCode,
		constants.ImplementationVersion,
	})
	txn := grp.AddTransaction([]string{
		constants.TransactionSetID,
		g.transactionControl,
		constants.ImplementationVersion,
	})

	txn.AddSegment("BHT",
		constants.HierarchicalStructureCode,
		constants.TransactionPurposeCode,
		claim.ClaimReference,
		edidate.CCYYMMDD(now),
		edidate.HHMM(now),
		constants.TransactionTypeCode)

	g.addSubmitter(txn)
	g.addReceiver(txn)
	g.addBillingProvider(txn)
	g.addSubscriber(txn)
	g.addPatient(txn)
	g.addClaim(txn, delims)
	g.addServiceLines(txn, delims)

	return doc.String(), nil
}

func (g *Generator837P) interchangeHeader(now time.Time, delims x12.Delimiters) []string {
	return []string{
		constants.AuthInfoQualifierNone,
		strings.Repeat(" ", 10),
		constants.SecurityInfoQualifierNone,
		strings.Repeat(" ", 10),
		constants.SenderIDQualifier,
		utils.PadRight(g.claim.FederalTaxID, constants.InterchangeIDWidth),
		constants.ReceiverIDQualifier,
		utils.PadRight(g.receiverID, constants.InterchangeIDWidth),
		edidate.YYMMDD(now),
		edidate.HHMM(now),
		delims.Repetition,
		constants.InterchangeVersion,
		g.interchangeControl,
		constants.AckRequestedNo,
		constants.UsageIndicatorProduction,
		delims.SubElement,
	}
}

// Loop 1000A. The billing provider acts as the submitter.
func (g *Generator837P) addSubmitter(txn *x12.TransactionSet) {
	bp := g.claim.BillingProvider
	txn.AddSegment("NM1",
		constants.EntitySubmitter,
		constants.EntityTypeNonPerson,
		bp.Name, "", "", "", "",
		constants.IDQualifierETIN,
		g.claim.FederalTaxID)
	txn.AddSegment("PER",
		constants.ContactFunctionCode,
		bp.Name,
		constants.CommQualifierTelephone,
		bp.Phone)
}

// Loop 1000B. The receiver is the fixed destination payer, not claim data.
func (g *Generator837P) addReceiver(txn *x12.TransactionSet) {
	txn.AddSegment("NM1",
		constants.EntityReceiver,
		constants.EntityTypeNonPerson,
		g.receiverName, "", "", "", "",
		constants.IDQualifierETIN,
		g.receiverID)
}

// Loop 2000A. HL ID and parent are fixed by role.
func (g *Generator837P) addBillingProvider(txn *x12.TransactionSet) {
	bp := g.claim.BillingProvider
	txn.AddSegment("HL",
		constants.HLBillingProviderID, "",
		constants.HLLevelBillingProvider,
		constants.HLChildYes)
	txn.AddSegment("NM1",
		constants.EntityBillingProvider,
		constants.EntityTypeNonPerson,
		bp.Name, "", "", "", "",
		constants.IDQualifierNPI,
		bp.NPI)
	addAddress(txn, bp.Address)
	txn.AddSegment("REF",
		constants.RefQualifierTaxID,
		g.claim.FederalTaxID)
	txn.AddSegment("PER",
		constants.ContactFunctionCode,
		bp.Name,
		constants.CommQualifierTelephone,
		bp.Phone)
}

// Loop 2000B.
func (g *Generator837P) addSubscriber(txn *x12.TransactionSet) {
	ins := g.claim.Insured
	txn.AddSegment("HL",
		constants.HLSubscriberID,
		constants.HLBillingProviderID,
		constants.HLLevelSubscriber,
		constants.HLChildYes)
	txn.AddSegment("SBR",
		constants.PayerResponsibilityPrimary,
		constants.RelationshipSelf,
		"", "",
		ins.InsuranceType,
		"", "", "",
		ins.ClaimFilingIndicator)
	txn.AddSegment("NM1",
		constants.EntityInsured,
		constants.EntityTypePerson,
		ins.LastName,
		ins.FirstName,
		ins.MiddleName,
		"", "",
		constants.IDQualifierMemberID,
		ins.SubscriberID)
	addAddress(txn, ins.Address)
	txn.AddSegment("NM1",
		constants.EntityPayer,
		constants.EntityTypeNonPerson,
		g.receiverName, "", "", "", "",
		constants.IDQualifierPayerID,
		g.receiverID)
}

// Loop 2000C. The patient is always a distinct hierarchical entity, even when
// the same natural person as the insured.
func (g *Generator837P) addPatient(txn *x12.TransactionSet) {
	pat := g.claim.Patient
	txn.AddSegment("HL",
		constants.HLPatientID,
		constants.HLSubscriberID,
		constants.HLLevelPatient,
		constants.HLChildNo)
	txn.AddSegment("PAT", pat.Relationship)
	txn.AddSegment("NM1",
		constants.EntityPatient,
		constants.EntityTypePerson,
		pat.LastName,
		pat.FirstName,
		pat.MiddleName)
	addAddress(txn, pat.Address)
	txn.AddSegment("DMG",
		constants.DateFormatSingle,
		edidate.CCYYMMDD(pat.BirthDate),
		pat.Gender)
}

// Loop 2300.
func (g *Generator837P) addClaim(txn *x12.TransactionSet, delims x12.Delimiters) {
	claim := g.claim

	// CLM05 takes the facility code from the first service line; the claim
	// frequency marks an original submission.
	facility := delims.Composite(
		claim.Services[0].Place,
		constants.FacilityCodeQualifier,
		constants.ClaimFrequencyOriginal)
	txn.AddSegment("CLM",
		claim.ClaimReference,
		claim.TotalCharge,
		"", "",
		facility,
		constants.ProviderSignatureYes,
		constants.ProviderAcceptAssignment,
		constants.AssignmentOfBenefitsYes,
		constants.ReleaseOfInformationYes)
	txn.AddSegment("AMT",
		constants.AmountQualifierPaid,
		claim.AmountPaid)
	txn.AddSegment("REF",
		constants.RefQualifierPriorAuth,
		claim.AuthorizationNumber)
	txn.AddSegment("HI", g.diagnosisElements(delims)...)
}

// diagnosisElements fills the twelve reserved HI composites. The principal
// diagnosis carries its own qualifier; codes past the cap are dropped.
func (g *Generator837P) diagnosisElements(delims x12.Delimiters) []string {
	elements := make([]string, constants.MaxDiagnosisCodes)
	for i, code := range g.claim.DiagnosisCodes {
		if i >= constants.MaxDiagnosisCodes {
			break
		}
		qualifier := constants.DiagQualifierSecondary
		if i == 0 {
			qualifier = constants.DiagQualifierPrincipal
		}
		elements[i] = delims.Composite(qualifier, code)
	}
	return elements
}

// Loop 2400, once per service line in input order.
func (g *Generator837P) addServiceLines(txn *x12.TransactionSet, delims x12.Delimiters) {
	for i, svc := range g.claim.Services {
		txn.AddSegment("LX", strconv.Itoa(i+1))

		procedure := delims.Composite(append(
			[]string{constants.ProcedureQualifierHCPCS, svc.Procedure},
			svc.Modifiers...)...)
		txn.AddSegment("SV1",
			procedure,
			svc.Charge,
			constants.UnitBasisUnits,
			svc.Units,
			svc.Place)
		txn.AddSegment("DTP",
			constants.ServiceDateQualifier,
			constants.DateFormatRange,
			edidate.DateRange(svc.From, svc.To))
		txn.AddSegment("NM1",
			constants.EntityRenderingProvider,
			constants.EntityTypePerson,
			"", "", "", "", "",
			constants.IDQualifierNPI,
			svc.RenderingProvider)
	}
}

// addAddress emits the N3/N4 pair for an entity. Unset parts keep their
// positions.
func addAddress(txn *x12.TransactionSet, a models.Address) {
	txn.AddSegment("N3", a.Street)
	txn.AddSegment("N4", a.City, a.State, a.Zip, a.Country)
}
