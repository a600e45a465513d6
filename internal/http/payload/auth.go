package payload

import (
	"errors"
	"lendboard/internal/core"
	"strings"

	"github.com/jellydator/validation"
)

var errBlank = errors.New("must not be blank")

// AuthRequest is the body of the login route.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.Length(1, 64), validation.By(notBlank)),
		validation.Field(&a.Password, validation.Required, validation.Length(1, 128)),
	)
}

// ToMessage trims the username, the password is passed through untouched.
func (a AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: strings.TrimSpace(a.Username),
		Password: a.Password,
	}
}

func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errBlank
	}
	return nil
}
