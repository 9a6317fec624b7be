package services

import "rhea-feedback-api/models"

// AllLocations is the pseudo-option for the location filter.
const AllLocations = "All Locations"

// invalidLocations are labels that mean "location unknown"; they are kept in
// the cleaned table but excluded from the per-location count chart.
var invalidLocations = map[string]struct{}{
	"N/A":       {},
	"Not found": {},
	"":          {},
}

type MapPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Location  string  `json:"location"`
	Crop      string  `json:"crop"`
	PH        float64 `json:"ph"`
}

type LocationCount struct {
	Location string `json:"location"`
	Tests    int    `json:"tests"`
}

// TimelinePoint feeds the date-by-location scatter; the full EAT timestamp
// and time of day surface on hover.
type TimelinePoint struct {
	Date         string `json:"date"`
	Location     string `json:"location"`
	CreatedAtEAT string `json:"created_at_eat"`
	TimeEAT      string `json:"time_eat"`
}

type Summary struct {
	// TotalRecords counts raw fetched rows, duplicates and test rows
	// included; CleanedRecords counts the cleaned table. Both are exposed
	// so the discrepancy is visible rather than silently reconciled.
	TotalRecords   int             `json:"total_records"`
	CleanedRecords int             `json:"cleaned_records"`
	Locations      []string        `json:"locations"`
	MapPoints      []MapPoint      `json:"map_points"`
	LocationCounts []LocationCount `json:"location_counts"`
	Timeline       []TimelinePoint `json:"timeline"`
	Warning        string          `json:"warning,omitempty"`
}

// BuildSummary derives the summary view payload. location filters the
// dependent visuals; AllLocations (or empty) means no filter. An empty
// input yields zero counts and empty slices, never nil panics.
func BuildSummary(raw []models.PredictionRecord, cleaned []CleanRecord, location string) Summary {
	if location == "" {
		location = AllLocations
	}

	summary := Summary{
		TotalRecords:   len(raw),
		CleanedRecords: len(cleaned),
		Locations:      distinctLocations(cleaned),
		MapPoints:      []MapPoint{},
		LocationCounts: []LocationCount{},
		Timeline:       []TimelinePoint{},
	}

	counts := make(map[string]int)
	var countOrder []string

	for _, rec := range cleaned {
		selected := location == AllLocations || rec.Location == location

		if selected && rec.Latitude != nil && rec.Longitude != nil {
			summary.MapPoints = append(summary.MapPoints, MapPoint{
				Latitude:  *rec.Latitude,
				Longitude: *rec.Longitude,
				Location:  rec.Location,
				Crop:      rec.Crop,
				PH:        rec.PH,
			})
		}

		if _, invalid := invalidLocations[rec.Location]; !invalid && selected {
			if _, ok := counts[rec.Location]; !ok {
				countOrder = append(countOrder, rec.Location)
			}
			counts[rec.Location]++
		}

		if selected {
			summary.Timeline = append(summary.Timeline, TimelinePoint{
				Date:         rec.Date,
				Location:     rec.Location,
				CreatedAtEAT: rec.CreatedAtEAT.Format("2006-01-02 15:04:05 MST"),
				TimeEAT:      rec.TimeEAT,
			})
		}
	}

	for _, loc := range countOrder {
		summary.LocationCounts = append(summary.LocationCounts, LocationCount{
			Location: loc,
			Tests:    counts[loc],
		})
	}

	return summary
}

// distinctLocations lists cleaned locations in first-seen order, for the
// filter dropdown.
func distinctLocations(cleaned []CleanRecord) []string {
	seen := make(map[string]struct{})
	locations := []string{}
	for _, rec := range cleaned {
		if _, ok := seen[rec.Location]; ok {
			continue
		}
		seen[rec.Location] = struct{}{}
		locations = append(locations, rec.Location)
	}
	return locations
}
