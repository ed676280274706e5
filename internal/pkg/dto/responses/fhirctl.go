package responses

type DeployedBot struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// CoreDataReport lists the seed files by outcome.
type CoreDataReport struct {
	Uploaded []string `json:"uploaded"`
	Skipped  []string `json:"skipped"`
	Failed   []string `json:"failed"`
}

func (r *CoreDataReport) Total() int {
	return len(r.Uploaded) + len(r.Skipped) + len(r.Failed)
}
