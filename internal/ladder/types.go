package ladder

import (
	"encoding/json"
	"fmt"
)

// FlightRecord is one row of the DailyScores feed. The feed is loosely
// typed; decoding keeps the raw document alongside the known fields so the
// task decomposer can read the dynamically keyed TP1, TP2, ... series.
type FlightRecord struct {
	FlightID     int64  `json:"FlightID"`
	Forename     string `json:"Forename"`
	Surname      string `json:"Surname"`
	PilotID      int64  `json:"PilotID"`
	ClubID       string `json:"ClubID"`
	Glider       string `json:"Glider"`
	GliderCode   int64  `json:"GliderCode"`
	Registration string `json:"Registration"`
	LoggerFile   string `json:"LoggerFile"`
	FlightDate   string `json:"FlightDate"`

	StartPoint  string `json:"StartPoint"`
	FinishPoint string `json:"FinishPoint"`

	Weekend   bool `json:"Weekend"`
	Junior    bool `json:"Junior"`
	Height    bool `json:"Height"`
	TwoSeater bool `json:"TwoSeater"`
	// Wood and Wooden both appear upstream and disagree occasionally;
	// ingestion stores their OR
	Wood   bool `json:"Wood"`
	Wooden bool `json:"Wooden"`
	Engine bool `json:"Engine"`

	Penalty         float64 `json:"Penalty"`
	Speed           float64 `json:"Speed"`
	HandicapSpeed   float64 `json:"HandicapSpeed"`
	ScoringDistance float64 `json:"ScoringDistance"`
	SpeedPoints     float64 `json:"SpeedPoints"`
	HeightGain      float64 `json:"HeightGain"`
	HeightPoints    float64 `json:"HeightPoints"`
	TotalPoints     float64 `json:"TotalPoints"`

	raw map[string]json.RawMessage
}

// UnmarshalJSON decodes the known fields and retains the raw document
func (r *FlightRecord) UnmarshalJSON(data []byte) error {
	type plain FlightRecord
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = FlightRecord(p)
	return json.Unmarshal(data, &r.raw)
}

// Turnpoint returns the code stored under the TP<i> key, or "" when the
// key is absent, null or empty
func (r *FlightRecord) Turnpoint(i int) string {
	msg, ok := r.raw[fmt.Sprintf("TP%d", i)]
	if !ok {
		return ""
	}
	var code string
	if err := json.Unmarshal(msg, &code); err != nil {
		return ""
	}
	return code
}

// GliderModelRecord is one entry of the bulk /api/Gliders endpoint
type GliderModelRecord struct {
	GliderType string  `json:"GliderType"`
	Seats      int     `json:"Seats"`
	Vintage    bool    `json:"Vintage"`
	Turbo      bool    `json:"Turbo"`
	Handicap   float64 `json:"Handicap"`
	GliderID   int64   `json:"GliderID"`
}

// LaunchPointRecord is one entry of the bulk /api/LaunchPoints endpoint.
// Altitude is in feet.
type LaunchPointRecord struct {
	Site      string  `json:"Site"`
	Latitude  float64 `json:"Latitude"`
	Longitude float64 `json:"Longitude"`
	Altitude  float64 `json:"Altitude"`
	LPCode    string  `json:"LPCode"`
	ClubID    string  `json:"ClubID"`
}

// ClubRecord is one entry of the bulk /api/Clubs endpoint
type ClubRecord struct {
	Name       string `json:"Name"`
	University bool   `json:"University"`
	ID         string `json:"ID"`
}

// PilotRecord is one entry of the bulk /api/ActivePilots endpoint
type PilotRecord struct {
	ForeName string `json:"ForeName"`
	Surname  string `json:"Surname"`
	ID       int64  `json:"ID"`
}
