package idea

import "time"

// Section is one named, ordered block of generated content within a record.
// Sections are embedded in their record and carry no storage identity of
// their own.
type Section struct {
	ID      string `json:"id" bson:"id"`
	Name    string `json:"name" bson:"name"`
	Content string `json:"content" bson:"content"`
	Order   int    `json:"order" bson:"order"`
}

// IdeaRecord is a persisted website idea together with its generated sections.
// ID, CreatedAt and UpdatedAt are assigned by the repository on insert.
type IdeaRecord struct {
	ID        string    `json:"id"`
	Idea      string    `json:"idea"`
	Sections  []Section `json:"sections"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a copy of r that shares no mutable state with it.
func (r *IdeaRecord) Clone() *IdeaRecord {
	if r == nil {
		return nil
	}
	out := *r
	if r.Sections != nil {
		out.Sections = make([]Section, len(r.Sections))
		copy(out.Sections, r.Sections)
	}
	return &out
}
