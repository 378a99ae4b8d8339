package importer

import (
	"fmt"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.Company == "" {
		errs = append(errs, fmt.Errorf("company is required"))
	}

	personRefs := make(map[string]bool)
	errs = append(errs, validatePeople(schema.People, personRefs)...)
	errs = append(errs, validateObjective(&schema.Objective, personRefs)...)

	krRefs := make(map[string]bool)
	errs = append(errs, validateKeyResults(schema.KeyResults, personRefs, krRefs)...)
	errs = append(errs, validateTasks(schema.Tasks, personRefs, krRefs)...)

	return errs
}

func validatePeople(people []PersonImport, personRefs map[string]bool) []error {
	var errs []error
	for i, p := range people {
		prefix := fmt.Sprintf("people[%d]", i)

		if p.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if personRefs[p.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, p.Ref))
		} else {
			personRefs[p.Ref] = true
		}

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}
	return errs
}

func validateObjective(o *ObjectiveImport, personRefs map[string]bool) []error {
	var errs []error

	if o.Title == "" {
		errs = append(errs, fmt.Errorf("objective.title is required"))
	}
	if o.ResponsibleRef == "" {
		errs = append(errs, fmt.Errorf("objective.responsible_ref is required"))
	} else if !personRefs[o.ResponsibleRef] {
		errs = append(errs, fmt.Errorf("objective.responsible_ref: ref %q not found in people", o.ResponsibleRef))
	}
	if o.CoordinatorRef != nil && !personRefs[*o.CoordinatorRef] {
		errs = append(errs, fmt.Errorf("objective.coordinator_ref: ref %q not found in people", *o.CoordinatorRef))
	}
	errs = append(errs, validateOptionalDate("objective.due_date", o.DueDate)...)

	return errs
}

func validateKeyResults(krs []KeyResultImport, personRefs, krRefs map[string]bool) []error {
	var errs []error
	for i, kr := range krs {
		prefix := fmt.Sprintf("key_results[%d]", i)

		if kr.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if krRefs[kr.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, kr.Ref))
		} else {
			krRefs[kr.Ref] = true
		}

		if kr.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if kr.ResponsibleRef != nil && !personRefs[*kr.ResponsibleRef] {
			errs = append(errs, fmt.Errorf("%s.responsible_ref: ref %q not found in people", prefix, *kr.ResponsibleRef))
		}
		errs = append(errs, validateOptionalDate(prefix+".due_date", kr.DueDate)...)
	}
	return errs
}

func validateTasks(tasks []TaskImport, personRefs, krRefs map[string]bool) []error {
	var errs []error
	taskRefs := make(map[string]bool)

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if taskRefs[t.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, t.Ref))
		} else {
			taskRefs[t.Ref] = true
		}

		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}

		if t.Status != "" && !domain.ValidTaskStatuses[t.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
		}

		if t.KRRef != nil {
			if !krRefs[*t.KRRef] {
				errs = append(errs, fmt.Errorf("%s.kr_ref: ref %q not found in key_results", prefix, *t.KRRef))
			}
			if t.Status == string(domain.TaskBacklog) {
				errs = append(errs, fmt.Errorf("%s: backlog status is incompatible with kr_ref %q", prefix, *t.KRRef))
			}
		} else if t.Status != "" && t.Status != string(domain.TaskBacklog) {
			errs = append(errs, fmt.Errorf("%s: status %q requires a kr_ref (tasks without one stay in the backlog)", prefix, t.Status))
		}

		if t.ResponsibleRef != nil && !personRefs[*t.ResponsibleRef] {
			errs = append(errs, fmt.Errorf("%s.responsible_ref: ref %q not found in people", prefix, *t.ResponsibleRef))
		}

		errs = append(errs, validateOptionalDate(prefix+".due_date", t.DueDate)...)
		if t.CompletedAt != nil {
			if _, err := time.Parse(time.RFC3339, *t.CompletedAt); err != nil {
				errs = append(errs, fmt.Errorf("%s.completed_at: invalid timestamp %q (expected RFC 3339)", prefix, *t.CompletedAt))
			}
			if t.Status != string(domain.TaskDone) {
				errs = append(errs, fmt.Errorf("%s: completed_at requires status %q", prefix, domain.TaskDone))
			}
		}
	}

	return errs
}

func validateOptionalDate(field string, dateStr *string) []error {
	if dateStr == nil || *dateStr == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", *dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *dateStr)}
	}
	return nil
}
