package request

type DirectorRequest struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required,notblank"`
}
