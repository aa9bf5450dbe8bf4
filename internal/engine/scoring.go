package engine

// PerformanceCostRatio scores stability per unit of metal cost:
//
//	ratio = (-energy / costPerKg) × 1000
//
// The energy is negated because stable systems have negative formation
// energies; a higher ratio therefore means more stability per dollar. A cost
// of zero or less yields 0.
func PerformanceCostRatio(energy, costPerKg float64) float64 {
	if costPerKg > 0 {
		return (-energy / costPerKg) * 1000
	}
	return 0
}
