package domain

// SignupForm carries the submitted fields of the signup form.
type SignupForm struct {
	Username string `json:"username" form:"username"`
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
}
