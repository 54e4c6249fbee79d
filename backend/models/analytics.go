package models

// DashboardStats is computed per request and never stored.
type DashboardStats struct {
	TotalRegistrations     int                `json:"totalRegistrations"`
	ThisMonthRegistrations int                `json:"thisMonthRegistrations"`
	ActiveCourses          int                `json:"activeCourses"`
	Revenue                float64            `json:"revenue"`
	CompletionRate         int                `json:"completionRate"`
	RegistrationTrends     []int              `json:"registrationTrends"`
	CoursePopularity       []CoursePopularity `json:"coursePopularity"`
	StartDate              string             `json:"startDate,omitempty"`
	EndDate                string             `json:"endDate,omitempty"`
}

type CoursePopularity struct {
	Course string `json:"course"`
	Count  int    `json:"count"`
}

// All lists every table the server migrates.
func All() []interface{} {
	return []interface{}{
		&AdminUser{},
		&Course{},
		&Registration{},
		&Banner{},
		&WebsiteSetting{},
		&ContactMessage{},
	}
}
