// Package analytics derives soil-health and yield figures from harvested
// crop records and shapes them into chart series. Everything here is a pure
// function of its input; derived values are never written back to the store.
package analytics

// DefaultSoilHealth is the score for crop types missing from the table.
const DefaultSoilHealth = 70

// soilHealth is a heuristic lookup, not a soil model. It looks at a single
// crop type and ignores rotation order and farm soil data.
var soilHealth = map[string]int{
	"Corn":     65,
	"Soybeans": 85,
	"Wheat":    75,
	"Tomatoes": 60,
	"Potatoes": 55,
	"Carrots":  70,
	"Lettuce":  80,
	"Peppers":  65,
	"Barley":   78,
	"Oats":     82,
}

// Score returns the 0-100 soil-health score for cropType.
func Score(cropType string) int {
	if v, ok := soilHealth[cropType]; ok {
		return v
	}
	return DefaultSoilHealth
}
