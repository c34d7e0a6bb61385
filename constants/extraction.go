package constants

// PatternKind classifies a customer detection pattern.
type PatternKind string

const (
	PatternText   PatternKind = "text"
	PatternRegex  PatternKind = "regex"
	PatternHeader PatternKind = "header"
	PatternFooter PatternKind = "footer"
	// PatternPosition is accepted on ingestion for legacy data but scored
	// like a text pattern.
	PatternPosition PatternKind = "position"
)

// DetectionMethod names the heuristic that produced a detection result.
type DetectionMethod string

const (
	MethodExactMatch   DetectionMethod = "exact_match"
	MethodFuzzyMatch   DetectionMethod = "fuzzy_match"
	MethodPatternMatch DetectionMethod = "pattern_match"
)

// RuleType is the extraction strategy of a template rule.
type RuleType string

const (
	RuleRegex       RuleType = "regex"
	RulePosition    RuleType = "position"
	RuleTable       RuleType = "table"
	RuleKeyword     RuleType = "keyword"
	RuleCalculation RuleType = "calculation"
)

// DataType is the declared (or inferred) type of an extracted field value.
type DataType string

const (
	TypeString     DataType = "string"
	TypeNumber     DataType = "number"
	TypeDate       DataType = "date"
	TypeCurrency   DataType = "currency"
	TypePercentage DataType = "percentage"
)

// RuleTypes holds the allowed rule strategies for schema validation.
var RuleTypes = []string{
	string(RuleRegex),
	string(RulePosition),
	string(RuleTable),
	string(RuleKeyword),
	string(RuleCalculation),
}

// DataTypes holds the allowed field data types for schema validation.
var DataTypes = []string{
	string(TypeString),
	string(TypeNumber),
	string(TypeDate),
	string(TypeCurrency),
	string(TypePercentage),
}
