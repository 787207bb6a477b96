package request

type ReviewRequest struct {
	ReviewID   int    `json:"reviewId"`
	Content    string `json:"content" validate:"required,notblank,max=1000"`
	IsPositive *bool  `json:"isPositive" validate:"required"`
	UserID     *int   `json:"userId" validate:"required"`
	FilmID     *int   `json:"filmId" validate:"required"`
}
