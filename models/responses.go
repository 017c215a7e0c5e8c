package models

// UserResponse is the public projection of a [User].
type UserResponse struct {
	Username string `json:"username"`
	ID       int64  `json:"id"`
}

// CreatedUserResponse is returned once, on user creation. Key is the plain
// API key and cannot be retrieved again.
type CreatedUserResponse struct {
	Username string `json:"username"`
	ID       int64  `json:"id"`
	Key      string `json:"key"`
}

// VideoResponse is the public projection of a [Video].
type VideoResponse struct {
	URL         string `json:"url"`
	ID          int64  `json:"id"`
	Description string `json:"description"`
	City        string `json:"city"`
	User        string `json:"user"`
	Date        Date   `json:"date"`
}

// CommentResponse is the public projection of a [Comment].
type CommentResponse struct {
	Body  string `json:"body"`
	User  string `json:"user"`
	Video string `json:"video"`
	ID    int64  `json:"id"`
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	Contents string `json:"contents"`
	ID       int64  `json:"id"`
}

// MessageResponse is the flat error body.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewUserResponse projects u.
func NewUserResponse(u User) UserResponse {
	return UserResponse{Username: u.Username, ID: u.UserID}
}

// NewVideoResponse projects v.
func NewVideoResponse(v Video) VideoResponse {
	return VideoResponse{
		URL:         v.URL,
		ID:          v.VideoID,
		Description: v.Description,
		City:        v.CityName,
		User:        v.Username,
		Date:        v.Date,
	}
}

// NewCommentResponse projects c.
func NewCommentResponse(c Comment) CommentResponse {
	return CommentResponse{
		Body:  c.Body,
		User:  c.Username,
		Video: c.VideoURL,
		ID:    c.CommentID,
	}
}
