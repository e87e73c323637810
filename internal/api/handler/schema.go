package handler

// Form payloads bound from the server-rendered pages. Field names match
// the template form inputs.

type registerRequest struct {
	Name     string `form:"name"     validate:"required"`
	Username string `form:"username" validate:"required,min=3"`
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// createPostRequest covers the text fields of the multipart post form;
// the pic1/pic2 file parts are read separately from the multipart body.
type createPostRequest struct {
	Title    string `form:"title"    validate:"required"`
	Content1 string `form:"content1" validate:"required"`
	Content2 string `form:"content2"`
}
