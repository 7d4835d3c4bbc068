package model

// Schedule is a full roster+tasks document, used by the YAML importer.
type Schedule struct {
	Persons []Person
	Tasks   []Task
}
