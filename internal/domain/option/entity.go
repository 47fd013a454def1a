package option

// Fixed option-value categories read by the consultant commission calculation.
const (
	KeyTreatmentPercent    = "TREATMENT_PERCENT"
	KeyProductPercentTier1 = "PRODUCT_PERCENT_TIER_1"
	KeyProductPercentTier2 = "PRODUCT_PERCENT_TIER_2"
	KeyProductTarget       = "PRODUCT_TARGET"
)

// Value is one key/value configuration row. Values are stored as strings and
// parsed as decimals by the consumer.
type Value struct {
	Category string
	Value    string
}
