package entity

// ArtistUpdate carries the optional fields of a partial profile update. A nil
// field is left untouched.
type ArtistUpdate struct {
	DisplayName *string
	Genres      []string
	Bio         *string
	Rate        *float64
}
