package validators

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields.
const (
	FieldUserID    = "user_id"
	FieldUsername  = "username"
	FieldVideoID   = "video_id"
	FieldURL       = "url"
	FieldCityID    = "city_id"
	FieldCommentID = "comment_id"
	FieldBody      = "body"
)

// Column limits shared with the schema in migrations/.
const (
	MaxUsernameLength = 20
	MaxURLLength      = 2000
)

func validateID(id int64, err error) error {
	if id <= 0 {
		return err
	}
	return nil
}

// validateOptionalID accepts zero as "not set".
func validateOptionalID(id int64, err error) error {
	if id < 0 {
		return err
	}
	return nil
}
