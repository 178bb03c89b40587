package domain

// SystemStats is the aggregate counters view served by GET /users/stats.
type SystemStats struct {
	TotalUsers             int            `json:"totalUsers"`
	TotalDoctors           int            `json:"totalDoctors"`
	TotalPatients          int            `json:"totalPatients"`
	TotalActiveUsers       int            `json:"totalActiveUsers"`
	TotalInactiveUsers     int            `json:"totalInactiveUsers"`
	TotalSpecialties       int            `json:"totalSpecialties"`
	TotalActiveSpecialties int            `json:"totalActiveSpecialties"`
	UsersByRole            map[string]int `json:"usersByRole"`
}
