package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"agentscore/internal/scoring"
)

// EncodeJSON serializes the report with stable indentation.
func EncodeJSON(rep *scoring.ScoreReport) ([]byte, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report as JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeJSON reads a JSON-encoded report.
func DecodeJSON(r io.Reader) (*scoring.ScoreReport, error) {
	var rep scoring.ScoreReport
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &rep, nil
}

// EncodeYAML serializes the report for pipeline consumers.
func EncodeYAML(rep *scoring.ScoreReport) ([]byte, error) {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report as YAML: %w", err)
	}
	return data, nil
}
