package entity

// Tag is reference data attached to questions through question_tags
type Tag struct {
	ID   int64
	Name string
}
