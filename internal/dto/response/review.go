package response

import (
	"film-social/internal/data/entity"
)

type ReviewResponse struct {
	ReviewID   int    `json:"reviewId"`
	Content    string `json:"content"`
	IsPositive bool   `json:"isPositive"`
	UserID     int    `json:"userId"`
	FilmID     int    `json:"filmId"`
	Useful     int    `json:"useful"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:   review.ID,
		Content:    review.Content,
		IsPositive: review.IsPositive,
		UserID:     review.UserID,
		FilmID:     review.FilmID,
		Useful:     review.Useful,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ReviewToResponse(review)
	}
	return responses
}
