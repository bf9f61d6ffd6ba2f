package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// CreditPolicy decides how a co-authored commit's delta is credited.
	CreditPolicy string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All credit policies supported.
const (
	// FullCredit gives every author of a commit the whole line delta.
	FullCredit CreditPolicy = "full" // default

	// SplitCredit divides the delta evenly, with the remainder going to the
	// primary author so repository totals are unchanged.
	SplitCredit CreditPolicy = "split"
)

// ValidOutputModes lists output modes accepted on the command line.
var ValidOutputModes = map[OutputMode]bool{
	CSVOut:     true,
	TextOut:    true,
	JSONOut:    true,
	ParquetOut: true,
}

// ValidCreditPolicies lists credit policies accepted on the command line.
var ValidCreditPolicies = map[CreditPolicy]bool{
	FullCredit:  true,
	SplitCredit: true,
}
