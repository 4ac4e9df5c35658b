package catalog

func strptr(s string) *string { return &s }

// Fallback returns the built-in two-area catalog used when the metadata
// source is unavailable. Kept in sync with the shipped para.json.
func Fallback() Catalog {
	return Catalog{
		Areas: []Area{
			{
				ID:       "personal",
				Name:     "Personal Optimization",
				Cadence:  "weekly",
				Keywords: []string{"wellness", "fitness", "habits"},
				Projects: []Project{
					{
						ID:   "habit-tune-up",
						Name: "Habit Tune-Up",
						Goal: "Refresh routines for sleep, movement, mindfulness",
					},
				},
				Resources: []Resource{
					{ID: "health-library", Name: "Health Library"},
				},
			},
			{
				ID:       "work",
				Name:     "Work and Career",
				Cadence:  "weekly",
				Keywords: []string{"clients", "deliverables", "team"},
				Projects: []Project{
					{
						ID:       "core-workflow",
						Name:     "C.O.R.E. System Build",
						Goal:     "Ship MVP automation stack",
						Deadline: strptr("2024-12-31"),
					},
					{
						ID:   "thought-leadership",
						Name: "Thought Leadership",
						Goal: "Publish monthly insight pieces",
					},
				},
				Resources: []Resource{
					{ID: "templates", Name: "Templates"},
					{ID: "research", Name: "Research Vault"},
				},
			},
		},
	}
}
