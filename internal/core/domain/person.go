package domain

import "time"

// PersonRecord is the structured result extracted from one document:
// a name plus the person's experience and education entries.
// Entry order reflects document order (most recent first per the
// source's convention), not a chronological sort.
type PersonRecord struct {
	// Name is the person's name. A record with an empty name is
	// rejected by the extractor.
	Name string

	// Experience lists employment entries in document order.
	Experience []ExperienceEntry

	// Education lists education entries in document order.
	Education []EducationEntry
}

// ExperienceEntry is one employment position.
type ExperienceEntry struct {
	// Organization is the employer name.
	Organization string

	// Role is the position title.
	Role string

	// Start is the start date, nil when unparseable.
	Start *time.Time

	// End is the end date, nil when unparseable or ongoing.
	End *time.Time

	// Current is true when the source marked the position as ongoing
	// ("Present" end date).
	Current bool

	// Location is the free-text location line, when present.
	Location string
}

// EducationEntry is one education record.
type EducationEntry struct {
	// School is the institution name.
	School string

	// Degree is the degree or field of study.
	Degree string

	// Start is the start date, nil when unparseable.
	Start *time.Time

	// End is the end date, nil when unparseable.
	End *time.Time
}

// Employee is a persisted employee row. The surrogate ID is allocated
// by the repository; Name is the de-duplication key (exact match).
type Employee struct {
	ID   int64
	Name string
}

// Experience is a persisted experience row.
type Experience struct {
	ID           int64
	Organization string
	Role         string
	Start        *time.Time
	End          *time.Time
	Current      bool
	Location     string
}

// Education is a persisted education row.
type Education struct {
	ID     int64
	School string
	Degree string
	Start  *time.Time
	End    *time.Time
}

// CommitResult reports the surrogate keys touched by one commit.
type CommitResult struct {
	// EmployeeID is the employee row the record was attached to.
	// It is reused when the name was already known.
	EmployeeID int64

	// ExperienceIDs are the newly inserted experience row ids, in
	// record order.
	ExperienceIDs []int64

	// EducationIDs are the newly inserted education row ids, in
	// record order.
	EducationIDs []int64
}

// TableCounts reports row counts across the persistent tables.
type TableCounts struct {
	Employees           int64
	Experiences         int64
	Educations          int64
	EmployeeExperiences int64
	EmployeeEducations  int64
}
