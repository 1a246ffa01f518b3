package dto

// DashboardSnapshot aggregates per-entity counts and the derived ratios shown
// on the summary view. Rates are percentages; a zero denominator yields 0.
type DashboardSnapshot struct {
	TotalStudents    int `json:"totalStudents"`
	ActiveStudents   int `json:"activeStudents"`
	InactiveStudents int `json:"inactiveStudents"`
	TotalCourses     int `json:"totalCourses"`
	ActiveCourses    int `json:"activeCourses"`
	InactiveCourses  int `json:"inactiveCourses"`
	TotalTeachers    int `json:"totalTeachers"`
	ActiveTeachers   int `json:"activeTeachers"`
	InactiveTeachers int `json:"inactiveTeachers"`

	EnrollmentRate      float64 `json:"enrollmentRate"`
	ActiveCourseRate    float64 `json:"activeCourseRate"`
	StudentTeacherRatio float64 `json:"studentTeacherRatio"`

	CacheHit bool `json:"cacheHit,omitempty"`
}
