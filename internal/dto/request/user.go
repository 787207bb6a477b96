package request

type UserRequest struct {
	ID    int    `json:"id"`
	Email string `json:"email" validate:"required,email"`
	// Login cannot be blank or contain spaces.
	Login    string `json:"login" validate:"required,nospaces"`
	Name     string `json:"name"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02,pastdate"`
}
