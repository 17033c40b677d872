package constants

// DataType is the field catalog data type driving normalization.
type DataType string

const (
	TypeString DataType = "string"
	TypeDate   DataType = "date"
	TypeAmount DataType = "amount"
	TypeEnum   DataType = "enum"
)

// DataTypes holds the allowed data_type values for schema validation.
var DataTypes = []string{
	string(TypeString),
	string(TypeDate),
	string(TypeAmount),
	string(TypeEnum),
}

// VerifyAction is a human review decision on an extraction result.
type VerifyAction string

const (
	VerifyAccept VerifyAction = "accept"
	VerifyModify VerifyAction = "modify" // accepted with a corrected value
	VerifyReject VerifyAction = "reject"
)

// VerifyActions holds the allowed verification actions.
var VerifyActions = []string{
	string(VerifyAccept),
	string(VerifyModify),
	string(VerifyReject),
}
