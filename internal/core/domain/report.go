package domain

import "time"

// GenerationRecord describes one synthesized descriptor in the run report.
type GenerationRecord struct {
	CaseID      string    `json:"case_id"`
	ProgramName string    `json:"program_name"`
	ProjectFile string    `json:"project_file"`
	SdkName     string    `json:"sdk_name"`
	GeneratedAt time.Time `json:"generated_at"`
}
