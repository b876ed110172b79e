package roster

// Course is one LMS course offering targeted by a run.
type Course struct {
	Name      string `json:"name" yaml:"name"`             // LMS short code, used as file name and enroll target
	SectionID string `json:"section_id" yaml:"section_id"` // NRC / cross-list key
	Period    string `json:"period" yaml:"period"`
}

// Slice returns the (period, section) pair records are matched on.
func (c Course) Slice() Slice {
	return Slice{Period: c.Period, SectionID: c.SectionID}
}

// Summary is the audit row written for each processed course.
type Summary struct {
	CourseName string `json:"course" yaml:"course"`
	SectionID  string `json:"section_id" yaml:"section_id"`
	Processed  int    `json:"processed" yaml:"processed"`
}
