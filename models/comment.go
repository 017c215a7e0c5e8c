package models

// Comment is a user's remark attached to a video.
type Comment struct {
	CommentID int64
	Body      string

	UserID   int64
	Username string

	VideoID  int64
	VideoURL string
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// CommentFilter narrows GET /Comments/. VideoID wins over UserID.
type CommentFilter struct {
	UserID  int64
	VideoID int64
}

// CommentUpdate represents a merge-style update of a single comment.
// Only non-nil fields are written.
type CommentUpdate struct {
	CommentID int64
	Body      *string
	UserID    *int64
	VideoID   *int64
}

// IsEmpty reports whether the update carries no fields to write.
func (u CommentUpdate) IsEmpty() bool {
	return u.Body == nil && u.UserID == nil && u.VideoID == nil
}
