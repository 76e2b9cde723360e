package dto

// LoginForm is posted by the login page. Username holds the email.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type RegistrationForm struct {
	LastName             string `form:"nom"`
	FirstName            string `form:"prenom"`
	Email                string `form:"email"`
	Password             string `form:"mdp"`
	PasswordConfirmation string `form:"confirmationMdp"`
}

type CategoryForm struct {
	ID    string `form:"id"`
	Name  string `form:"nom"`
	Color string `form:"couleur"`
}

// TodoForm keeps raw strings so that a rejected submission can be rendered
// back exactly as typed.
type TodoForm struct {
	ID          string `form:"id"`
	Title       string `form:"titre"`
	Description string `form:"description"`
	Done        string `form:"etreFait"`
	DueAt       string `form:"dateAFaire"`
	CategoryID  string `form:"categorieId"`
}

type DeleteForm struct {
	ID string `form:"id"`
}
