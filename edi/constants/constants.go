package constants

// This is set during compilation. See build_and_package.sh in the ops repo
var Version = "latest"

// Delimiter configuration shared by every document this app produces.
const (
	ElementDelimiter    = "*"
	SubElementDelimiter = ":"
	RepetitionDelimiter = "^"
	SegmentTerminator   = "~\n"
)

// Interchange (ISA) constants.
const (
	AuthInfoQualifierNone     = "00"
	SecurityInfoQualifierNone = "00"
	SenderIDQualifier         = "ZZ"
	ReceiverIDQualifier       = "ZZ"
	InterchangeVersion        = "00501"
	AckRequestedNo            = "0"
	UsageIndicatorProduction  = "P"
	InterchangeIDWidth        = 15
)

// Functional group / transaction set constants.
const (
	FunctionalIDHealthCareClaim = "HC"
	ResponsibleAgencyCode       = "X"
	ImplementationVersion       = "005010X222A1"
	TransactionSetID            = "837"
)

// Beginning of hierarchical transaction (BHT) constants.
const (
	HierarchicalStructureCode = "0019"
	TransactionPurposeCode    = "18"
	TransactionTypeCode       = "31"
)

// NM1 entity identifier codes.
const (
	EntitySubmitter         = "41"
	EntityReceiver          = "40"
	EntityBillingProvider   = "85"
	EntityInsured           = "IL"
	EntityPayer             = "PR"
	EntityPatient           = "QC"
	EntityRenderingProvider = "82"
)

// NM1 entity type qualifiers.
const (
	EntityTypePerson    = "1"
	EntityTypeNonPerson = "2"
)

// NM1 identification code qualifiers.
const (
	IDQualifierETIN     = "46"
	IDQualifierMemberID = "MI"
	IDQualifierPayerID  = "XV"
	IDQualifierNPI      = "XX"
)

// Hierarchical level codes and the fixed HL tree for a professional claim.
// IDs and parent links are set by role, never by the caller.
const (
	HLBillingProviderID    = "1"
	HLSubscriberID         = "2"
	HLPatientID            = "3"
	HLLevelBillingProvider = "20"
	HLLevelSubscriber      = "22"
	HLLevelPatient         = "23"
	HLChildYes             = "1"
	HLChildNo              = "0"
)

// Receiver identity. The destination payer is fixed for this application and
// is not derived from claim data. Overridable through EDI_RECEIVER_NAME and
// EDI_RECEIVER_ID at the CLI boundary.
const (
	DefaultReceiverName = "ELDERPLAN"
	DefaultReceiverID   = "31625"
)

// Claim loop (2300) constants.
const (
	RefQualifierTaxID        = "EI"
	RefQualifierPriorAuth    = "G1"
	AmountQualifierPaid      = "F5"
	ContactFunctionCode      = "IC"
	CommQualifierTelephone   = "TE"
	ProviderSignatureYes     = "Y"
	AssignmentOfBenefitsYes  = "Y"
	ReleaseOfInformationYes  = "Y"
	ProviderAcceptAssignment = "A"
	ClaimFrequencyOriginal   = "1"
	FacilityCodeQualifier    = "B"
)

// Diagnosis (HI) constants. The principal diagnosis carries a distinct
// qualifier from the secondary positions. Twelve composite slots are reserved
// in HI; codes past the cap are dropped.
const (
	DiagQualifierPrincipal = "BK"
	DiagQualifierSecondary = "ABF"
	MaxDiagnosisCodes      = 12
)

// Subscriber (SBR) constants.
const (
	PayerResponsibilityPrimary = "P"
	RelationshipSelf           = "18"
)

// Service line (2400) constants.
const (
	ProcedureQualifierHCPCS = "HC"
	UnitBasisUnits          = "UN"
	ServiceDateQualifier    = "472"
	DateFormatRange         = "RD8"
	DateFormatSingle        = "D8"
)

// Default envelope control numbers, used when the caller does not supply its
// own through generator options.
const (
	DefaultInterchangeControlNumber = "000000001"
	DefaultGroupControlNumber       = "1"
	DefaultTransactionControlNumber = "0001"
)
