package ingest

import (
	"github.com/jwjr/ladder-mirror/internal/ladder"
)

// TurnpointSequence extracts the ordered turnpoint codes of a flight:
// the start point if non-empty, then TP1, TP2, ... consumed until the
// first missing or empty key, then the finish point if non-empty.
//
// The TP scan is a fixed-index walk and gaps terminate it: a record with
// TP1 and TP2 but no TP3 yields only TP1 and TP2 even when TP4 is set.
func TurnpointSequence(rec *ladder.FlightRecord) []string {
	var codes []string

	if rec.StartPoint != "" {
		codes = append(codes, rec.StartPoint)
	}

	for i := 1; ; i++ {
		code := rec.Turnpoint(i)
		if code == "" {
			break
		}
		codes = append(codes, code)
	}

	if rec.FinishPoint != "" {
		codes = append(codes, rec.FinishPoint)
	}

	return codes
}
