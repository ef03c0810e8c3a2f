package analytics

import (
	"math"
	"sort"

	"farmtrack/entities"
)

const (
	SeriesSoilHealth    = "Soil Health Score"
	SeriesYield         = "Yield"
	SeriesAvgSoilHealth = "Average Soil Health Score"

	// categoryLayout renders planting dates as "Mar 2024".
	categoryLayout = "Jan 2006"
)

// HistoryEntry is a harvested record together with its derived figures.
type HistoryEntry struct {
	entities.CropRecord
	SoilHealthScore int       `json:"soil_health_score"`
	YieldData       YieldData `json:"yield_data"`
}

type Series struct {
	Name string    `json:"name"`
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

// Chart is index-aligned: Series[k].Data[i] belongs to Categories[i].
type Chart struct {
	Categories []string `json:"categories"`
	Series     []Series `json:"series"`
}

type ChartSet struct {
	Timeline   Chart `json:"timeline"`
	SoilHealth Chart `json:"soil_health"`
}

// Enrich attaches soil-health and yield figures to each record.
func Enrich(history []entities.CropRecord) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(history))
	for _, r := range history {
		out = append(out, HistoryEntry{
			CropRecord:      r.Clone(),
			SoilHealthScore: Score(r.CropType),
			YieldData:       Project(r.Quantity),
		})
	}
	return out
}

// Timeline pairs soil health (line) with actual yield (column) per planting
// month, oldest first. Entries planted on the same day keep their order.
func Timeline(entries []HistoryEntry) Chart {
	sorted := append([]HistoryEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PlantingDate.Before(sorted[j].PlantingDate.Time)
	})

	categories := make([]string, 0, len(sorted))
	soil := make([]float64, 0, len(sorted))
	yield := make([]float64, 0, len(sorted))
	for _, e := range sorted {
		categories = append(categories, e.PlantingDate.Format(categoryLayout))
		soil = append(soil, float64(e.SoilHealthScore))
		yield = append(yield, e.YieldData.Actual)
	}
	return Chart{
		Categories: categories,
		Series: []Series{
			{Name: SeriesSoilHealth, Type: "line", Data: soil},
			{Name: SeriesYield, Type: "column", Data: yield},
		},
	}
}

// CropAverages averages soil health per crop type in first-seen order.
// Records that are not harvested are skipped even if the caller passed them.
func CropAverages(entries []HistoryEntry) Chart {
	var (
		categories []string
		sums       = map[string]int{}
		counts     = map[string]int{}
	)
	for _, e := range entries {
		if !e.IsHarvested() {
			continue
		}
		key := groupKey(e.CropRecord)
		if _, seen := counts[key]; !seen {
			categories = append(categories, key)
		}
		sums[key] += e.SoilHealthScore
		counts[key]++
	}

	data := make([]float64, 0, len(categories))
	for _, c := range categories {
		data = append(data, math.Round(float64(sums[c])/float64(counts[c])))
	}
	if categories == nil {
		categories = []string{}
	}
	return Chart{
		Categories: categories,
		Series:     []Series{{Name: SeriesAvgSoilHealth, Type: "bar", Data: data}},
	}
}

// Build produces both charts from the same enriched history.
func Build(entries []HistoryEntry) ChartSet {
	return ChartSet{Timeline: Timeline(entries), SoilHealth: CropAverages(entries)}
}

func groupKey(r entities.CropRecord) string {
	if r.IsPlan() {
		return string(entities.KindRotationPlan)
	}
	return r.CropType
}
