package session

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

var errInvalidToken = errors.New("invalid role token")

// Claims are carried by the signed role flag.
type Claims struct {
	jwt.StandardClaims
	Role Role `json:"role"`
}

// Codec signs and verifies the role flag stored on the client, so that a
// hand-edited value reads as an absent session.
type Codec struct {
	key    []byte
	issuer string
	now    func() time.Time
}

func NewCodec(secretKey, issuer string) *Codec {
	return &Codec{key: []byte(secretKey), issuer: issuer, now: time.Now}
}

// Encode returns the signed HS256 token carrying role.
func (c *Codec) Encode(role Role) (string, error) {
	if !role.Valid() {
		return "", ErrInvalidRole
	}
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:   c.issuer,
			IssuedAt: c.now().Unix(),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(c.key)
	if err != nil {
		return "", errors.Wrap(err, "signing role token")
	}
	return ss, nil
}

// Decode verifies the token and returns the role it carries.
func (c *Codec) Decode(tokenStr string) (Role, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errInvalidToken
		}
		return c.key, nil
	})
	if err != nil {
		return "", errors.Wrap(err, "parsing role token")
	}
	if !token.Valid || claims.Issuer != c.issuer || !claims.Role.Valid() {
		return "", errInvalidToken
	}
	return claims.Role, nil
}
