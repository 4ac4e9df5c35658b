package catalog

// Catalog is the static PARA metadata tree: Areas containing Projects and
// Resources. It is loaded once at startup and treated as immutable reference
// data for the session.
type Catalog struct {
	Areas []Area `json:"areas"`
}

// Area groups projects and resources under a responsibility with a review
// cadence and matching keywords.
type Area struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Cadence   string     `json:"cadence"`
	Keywords  []string   `json:"keywords"`
	Projects  []Project  `json:"projects"`
	Resources []Resource `json:"resources"`
}

// Project is a goal-bound container objects can be assigned to.
type Project struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Goal     string  `json:"goal"`
	Deadline *string `json:"deadline"`
}

// Resource is a reference collection within an area.
type Resource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AreaName returns the display name for an area ID, or "" if unknown.
func (c *Catalog) AreaName(id string) string {
	for _, area := range c.Areas {
		if area.ID == id {
			return area.Name
		}
	}
	return ""
}

// ProjectName returns the display name for a project ID, or "" if unknown.
func (c *Catalog) ProjectName(id string) string {
	if p := c.FindProject(id); p != nil {
		return p.Name
	}
	return ""
}

// FindProject looks a project up across all areas.
func (c *Catalog) FindProject(id string) *Project {
	for ai := range c.Areas {
		for pi := range c.Areas[ai].Projects {
			if c.Areas[ai].Projects[pi].ID == id {
				return &c.Areas[ai].Projects[pi]
			}
		}
	}
	return nil
}

// AreaForProject returns the area containing the given project, or nil.
func (c *Catalog) AreaForProject(projectID string) *Area {
	for ai := range c.Areas {
		for _, p := range c.Areas[ai].Projects {
			if p.ID == projectID {
				return &c.Areas[ai]
			}
		}
	}
	return nil
}

// Projects returns every project across all areas, in catalog order.
func (c *Catalog) Projects() []Project {
	var out []Project
	for _, area := range c.Areas {
		out = append(out, area.Projects...)
	}
	return out
}
