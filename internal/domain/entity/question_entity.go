package entity

// Question is the persisted question row. Difficulty, Answer and Code are
// nullable in the store and nil means NULL.
type Question struct {
	ID         int64
	Title      string
	Content    string
	SubjectID  int64
	Difficulty *string
	Answer     *string
	Code       *string
}

// QuestionDetail is a question joined with its subject name.
type QuestionDetail struct {
	ID         int64
	Title      string
	Content    string
	Difficulty *string
	Answer     *string
	Code       *string
	Subject    string
}

// QuestionListItem is a QuestionDetail plus the comma-joined names of its tags.
// Tags is nil when the question has no tags.
type QuestionListItem struct {
	QuestionDetail
	Tags *string
}
