package dto

type CreateArtistRequest struct {
	DisplayName string   `json:"display_name" validate:"required,min=1,max=128"`
	Genres      []string `json:"genres" validate:"omitempty,dive,min=1"`
	Bio         string   `json:"bio" validate:"max=2000"`
	Rate        float64  `json:"rate" validate:"gte=0"`
}

type UpdateArtistRequest struct {
	DisplayName *string  `json:"display_name" validate:"omitempty,min=1,max=128"`
	Genres      []string `json:"genres" validate:"omitempty,dive,min=1"`
	Bio         *string  `json:"bio" validate:"omitempty,max=2000"`
	Rate        *float64 `json:"rate" validate:"omitempty,gte=0"`
}

type UnavailableDatesRequest struct {
	Dates []string `json:"dates" validate:"required,dive,datetime=2006-01-02"`
}
