// =============================================================================
// XLSX Header Stamper - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - roster
//   - matcher
//   - pipeline
//   - report
//
// =============================================================================

package types

// =============================================================================
// COMPANY TYPES
// =============================================================================

// CompanyRecord holds the identity fields of one company, extracted from a
// single 6-row block of the roster workbook. All fields are plain trimmed
// text; no content validation is performed (a malformed CNPJ is kept as-is).
type CompanyRecord struct {
	// LegalName is the company's registered name ("Razão Social").
	// It is the record's identity key and is never empty: roster blocks
	// without a legal name are discarded during extraction.
	LegalName string

	// TaxID is the Brazilian company tax identifier ("CNPJ").
	TaxID string

	// Address is the full postal address ("Endereço").
	Address string

	// Phone is the contact phone number ("Telefone").
	Phone string

	// Email is the contact e-mail address.
	Email string
}

// InputFile is one target workbook to be stamped: its base file name and raw
// xlsx content. The pipeline treats the pair as an immutable input.
type InputFile struct {
	Name string
	Data []byte
}

// =============================================================================
// MATCH LOG TYPES
// =============================================================================

// MatchOutcome classifies the result of processing one target file.
type MatchOutcome int

const (
	// OutcomeMatched means the file matched a roster entry and was stamped.
	OutcomeMatched MatchOutcome = iota

	// OutcomeNotFound means no roster key scored at or above the match
	// threshold for this file name.
	OutcomeNotFound

	// OutcomeOpenError means a roster entry matched but the file could not
	// be opened as an xlsx workbook.
	OutcomeOpenError
)

// MatchLogEntry records the outcome for a single target file. Entries are
// appended in input order, exactly one per file.
type MatchLogEntry struct {
	// FileName is the base name of the input file, extension included.
	FileName string

	// Key is the normalized lookup key derived from the file name.
	Key string

	// Outcome classifies what happened to this file.
	Outcome MatchOutcome

	// LegalName is the matched company's legal name. Set only when
	// Outcome is OutcomeMatched.
	LegalName string

	// Err is the underlying open failure. Set only when Outcome is
	// OutcomeOpenError.
	Err error
}

// =============================================================================
// BATCH RESULT
// =============================================================================

// BatchResult is the complete output of one processing run.
type BatchResult struct {
	// Archive is the finished zip, one entry per successfully stamped
	// workbook, keyed by the original file name.
	Archive []byte

	// Log holds one entry per input file, in input order.
	Log []MatchLogEntry

	// Records are the companies extracted from the roster, in roster
	// order. Exposed so callers can display the detected legal names.
	Records []CompanyRecord
}
