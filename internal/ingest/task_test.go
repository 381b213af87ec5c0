package ingest

import (
	"encoding/json"
	"testing"

	"github.com/jwjr/ladder-mirror/internal/ladder"
)

func recordFromJSON(t *testing.T, doc string) *ladder.FlightRecord {
	t.Helper()
	var rec ladder.FlightRecord
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		t.Fatalf("failed to unmarshal record: %v", err)
	}
	return &rec
}

func TestTurnpointSequence(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "start, turnpoints, finish",
			doc:  `{"StartPoint": "A", "TP1": "B", "TP2": "C", "FinishPoint": "D"}`,
			want: []string{"A", "B", "C", "D"},
		},
		{
			name: "gap in TP series stops the scan",
			doc:  `{"StartPoint": "A", "TP1": "B", "TP3": "X", "TP4": "Y", "FinishPoint": "D"}`,
			want: []string{"A", "B", "D"},
		},
		{
			name: "empty TP stops the scan",
			doc:  `{"TP1": "B", "TP2": "", "TP3": "X"}`,
			want: []string{"B"},
		},
		{
			name: "null TP stops the scan",
			doc:  `{"TP1": "B", "TP2": null, "TP3": "X"}`,
			want: []string{"B"},
		},
		{
			name: "missing start and finish",
			doc:  `{"TP1": "B", "TP2": "C"}`,
			want: []string{"B", "C"},
		},
		{
			name: "empty start and finish are skipped",
			doc:  `{"StartPoint": "", "TP1": "B", "FinishPoint": ""}`,
			want: []string{"B"},
		},
		{
			name: "no turnpoints at all",
			doc:  `{}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TurnpointSequence(recordFromJSON(t, tt.doc))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("position %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
