package description

// FallbackText is rendered in place of a description when generation fails.
const FallbackText = "An error occurred while generating the description."

// Record is one submitted name and the description produced for it.
// It is persisted as the single-key document {Name: Description}; repeated
// submissions of the same name produce independent documents.
type Record struct {
	Name        string
	Description string
}

// Document returns the persisted shape of the record.
func (r Record) Document() map[string]string {
	return map[string]string{r.Name: r.Description}
}
