package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for objective import.
type ImportSchema struct {
	Company    string            `json:"company"`
	People     []PersonImport    `json:"people,omitempty"`
	Objective  ObjectiveImport   `json:"objective"`
	KeyResults []KeyResultImport `json:"key_results"`
	Tasks      []TaskImport      `json:"tasks,omitempty"`
}

// PersonImport defines a person created alongside the objective. Refs in
// the rest of the file point at these entries.
type PersonImport struct {
	Ref   string `json:"ref"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// ObjectiveImport defines the objective-level fields in the import file.
type ObjectiveImport struct {
	Title          string  `json:"title"`
	DueDate        *string `json:"due_date,omitempty"`
	ResponsibleRef string  `json:"responsible_ref"`
	CoordinatorRef *string `json:"coordinator_ref,omitempty"`
}

// KeyResultImport defines a key result in the import file.
type KeyResultImport struct {
	Ref            string  `json:"ref"`
	Title          string  `json:"title"`
	DueDate        *string `json:"due_date,omitempty"`
	ResponsibleRef *string `json:"responsible_ref,omitempty"`
}

// TaskImport defines a task in the import file. Tasks without kr_ref land
// in the objective's backlog.
type TaskImport struct {
	Ref            string  `json:"ref"`
	KRRef          *string `json:"kr_ref,omitempty"`
	Title          string  `json:"title"`
	Status         string  `json:"status,omitempty"`
	DueDate        *string `json:"due_date,omitempty"`
	CompletedAt    *string `json:"completed_at,omitempty"`
	ResponsibleRef *string `json:"responsible_ref,omitempty"`
}

// LoadImportSchema reads and parses an objective import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
