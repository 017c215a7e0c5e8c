package models

// City is a lookup entry a video may reference.
type City struct {
	CityID int64  `json:"id"`
	Name   string `json:"name"`
}

// TableName returns the name of the database table
// associated with the City model.
func (c City) TableName() string {
	return "cities"
}
