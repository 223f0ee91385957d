package entities

// Credentials платежная нагрузка аутентификации, matricule водителя в Username.
// Сами кредфлоу вне ядра, тут только форма запроса.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Societe  string `json:"societe"`
}

// Namespace ключевое пространство локального хранилища для этого логина.
func (c Credentials) Namespace() string {
	return c.Societe + ":" + c.Username
}
