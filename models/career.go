package models

// Career is one record from the static careers.json catalog. Field names
// match the JSON the site already ships.
type Career struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	NOC          string   `json:"noc"`
	SalaryBCLow  float64  `json:"salary_bc_low"`
	SalaryBCHigh float64  `json:"salary_bc_high"`
	OutlookBC    string   `json:"outlook_bc"`
	Skills       []string `json:"skills"`
	Duties       []string `json:"duties"`
	Education    string   `json:"education"`
	LinkWorkBC   string   `json:"link_workbc"`
	LinkJobBank  string   `json:"link_jobbank"`
}

// ProgramCareers maps a program identifier to the careers it leads to.
type ProgramCareers map[string][]string
