package dto

// Form payloads bound from the server-rendered pages. Validation tags
// are enforced by gin's binding (go-playground validator).

type LoginForm struct {
	Username string `form:"username" binding:"required,max=100"`
	Password string `form:"password" binding:"required"`
}

type RegisterForm struct {
	Username  string `form:"username" binding:"required,max=100"`
	Password  string `form:"password" binding:"required"`
	FirstName string `form:"first_name" binding:"required,max=100"`
	LastName  string `form:"last_name" binding:"required,max=100"`
	Email     string `form:"email" binding:"required,email"`
}

type ChangePasswordForm struct {
	Password1 string `form:"password1" binding:"required"`
	Password2 string `form:"password2" binding:"required,eqfield=Password1"`
}

type GameForm struct {
	Title      string `form:"title" binding:"required,max=200"`
	Year       int    `form:"year"`
	CategoryID int64  `form:"category" binding:"required"`
}

type CategoryForm struct {
	Name string `form:"name" binding:"required,max=100"`
}

// GameActionForm carries the single detail-page form. At most one of
// the three fields is acted upon per submission.
type GameActionForm struct {
	Comment string `form:"comment"`
	Rate    string `form:"rate"`
	Wish    string `form:"wish"`
}
