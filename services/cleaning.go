package services

import (
	"fmt"
	"strconv"
	"time"

	"rhea-feedback-api/models"
)

// EAT is the civil timezone every stored timestamp is normalized to.
// Kenya/Tanzania observe no daylight saving, so a fixed offset is exact.
var EAT = time.FixedZone("EAT", 3*60*60)

// CleanRecord is a prediction record after cleaning: location canonicalized
// and the creation timestamp parsed, converted to EAT and split into display
// fields. It is a derived view, recomputed per request, never persisted.
type CleanRecord struct {
	models.PredictionRecord
	CreatedAtEAT time.Time `json:"created_at_eat"`
	Date         string    `json:"date"`
	TimeEAT      string    `json:"time_eat"`
}

// Cleaner normalizes raw fetched rows into the analysis-ready table every
// view reads. Steps run in order: dedup, alias canonicalization, sentinel
// exclusion, timestamp normalization, derived-field extraction.
type Cleaner struct {
	// Aliases maps legacy location spellings to their standard label.
	Aliases map[string]string
	// Sentinel is the placeholder location used for internal testing;
	// rows carrying it are excluded from analysis.
	Sentinel string
}

func NewCleaner() *Cleaner {
	return &Cleaner{
		Aliases: map[string]string{
			"Muranga County": "Murang'a",
		},
		Sentinel: "Nairobi County",
	}
}

// measurementKey is the tuple that defines a duplicate: two rows that agree
// on every field here are the same soil test, whatever their identifiers.
type measurementKey struct {
	n, p, k    float64
	temp, hum  float64
	ph, rain   float64
	lat, lng   string
	crop       string
}

func coordKey(v *float64) string {
	if v == nil {
		return "null"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func keyOf(r models.PredictionRecord) measurementKey {
	return measurementKey{
		n:    r.Nitrogen,
		p:    r.Phosphorus,
		k:    r.Potassium,
		temp: r.Temperature,
		hum:  r.Humidity,
		ph:   r.PH,
		rain: r.Rainfall,
		lat:  coordKey(r.Latitude),
		lng:  coordKey(r.Longitude),
		crop: r.Crop,
	}
}

// Clean runs the full pipeline. A timestamp that fails to parse fails the
// whole invocation: silently dropping the row would corrupt record counts
// downstream, and an explicit error is the lesser evil.
func (c *Cleaner) Clean(rows []models.PredictionRecord) ([]CleanRecord, error) {
	seen := make(map[measurementKey]struct{}, len(rows))
	cleaned := make([]CleanRecord, 0, len(rows))

	for _, row := range rows {
		key := keyOf(row)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if canonical, ok := c.Aliases[row.Location]; ok {
			row.Location = canonical
		}
		if row.Location == c.Sentinel {
			continue
		}

		ts, err := ParseStoredTimestamp(row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", row.PredictionID, err)
		}
		eat := ts.In(EAT)
		row.CreatedAt = eat.Format(time.RFC3339)

		cleaned = append(cleaned, CleanRecord{
			PredictionRecord: row,
			CreatedAtEAT:     eat,
			Date:             eat.Format("2006-01-02"),
			TimeEAT:          eat.Format("15:04:05"),
		})
	}

	return cleaned, nil
}

// storedLayouts covers the timestamp shapes upstream has been observed to
// write. Layouts without a zone suffix are interpreted as UTC.
var storedLayouts = []struct {
	layout string
	naive  bool
}{
	{time.RFC3339Nano, false},
	{time.RFC3339, false},
	{"2006-01-02T15:04:05.999999", true},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02 15:04:05", true},
}

// ParseStoredTimestamp parses a crop_predictions created_at value. A value
// with no timezone annotation is treated as UTC.
func ParseStoredTimestamp(s string) (time.Time, error) {
	for _, l := range storedLayouts {
		if l.naive {
			if t, err := time.ParseInLocation(l.layout, s, time.UTC); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.Parse(l.layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable created_at timestamp %q", s)
}
