// pkg/api/report_v1.go
package api

// TraceV1 is the three-line alignment display of the winning offset.
type TraceV1 struct {
	Reference  string `json:"reference"`
	Indicator  string `json:"indicator"`
	Comparison string `json:"comparison"`
}

// PairV1 is the stable JSON/JSONL schema for one scored pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type PairV1 struct {
	ID1        string   `json:"id1"`
	ID2        string   `json:"id2"`
	Similarity float64  `json:"similarity"`
	Matches    int      `json:"matches"`
	Offset     int      `json:"offset"`
	Trace      *TraceV1 `json:"trace,omitempty"`
}

// ReportV1 is the single-document JSON output.
type ReportV1 struct {
	Pairs []PairV1 `json:"pairs"`
	Best  *PairV1  `json:"best"`
}

// RecordV1 is one JSONL line: Type is "pair" or "best". A "best" record with
// Found=false means no pair scored above zero.
type RecordV1 struct {
	Type  string `json:"type"`
	Found *bool  `json:"found,omitempty"`
	*PairV1
}

// SequenceV1 is an extracted chromosome.
type SequenceV1 struct {
	ID     string `json:"id"`
	Length int    `json:"length"`
	Seq    string `json:"seq"`
}
