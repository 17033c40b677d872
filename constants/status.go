package constants

// DocStatus is the canonical lifecycle status for rows in documents.
type DocStatus string

// Stable values (store these exact strings in DB).
const (
	StatusUploaded     DocStatus = "uploaded"     // just created, nothing ran yet
	StatusProcessing   DocStatus = "processing"   // preprocess stage in progress
	StatusPreprocessed DocStatus = "preprocessed" // pages extracted, ready for field extraction
	StatusExtracting   DocStatus = "extracting"   // extract stage in progress
	StatusExtracted    DocStatus = "extracted"    // field extraction done
	StatusFailed       DocStatus = "failed"       // a stage failed; retry goes through pending
	StatusPending      DocStatus = "pending"      // manual reset, re-enters processing
)

// DocStatuses holds every legal status value, for schema validation.
var DocStatuses = []string{
	string(StatusUploaded),
	string(StatusProcessing),
	string(StatusPreprocessed),
	string(StatusExtracting),
	string(StatusExtracted),
	string(StatusFailed),
	string(StatusPending),
}

// transitions is the full edge set of the document lifecycle. Anything not
// listed here is a stale-state violation.
var transitions = map[DocStatus][]DocStatus{
	StatusUploaded:     {StatusProcessing},
	StatusProcessing:   {StatusPreprocessed, StatusFailed},
	StatusPreprocessed: {StatusExtracting},
	StatusExtracting:   {StatusExtracted, StatusFailed},
	StatusExtracted:    {StatusPending},
	StatusFailed:       {StatusPending},
	StatusPending:      {StatusProcessing},
}

// CanTransition reports whether from -> to is a legal lifecycle edge.
func CanTransition(from, to DocStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsStable reports whether a status is a rest state (no stage in flight).
func IsStable(s DocStatus) bool {
	return s == StatusPreprocessed || s == StatusExtracted || s == StatusFailed
}
