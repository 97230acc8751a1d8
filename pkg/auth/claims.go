package auth

import "github.com/golang-jwt/jwt/v5"

// Role identifies what surface a token may reach.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

// AccessTokenPayload is the input to MintAccessToken.
type AccessTokenPayload struct {
	CustomerCode int
	Role         Role
	JTI          string
}

// AccessTokenClaims is the typed claim set carried by storefront tokens.
type AccessTokenClaims struct {
	CustomerCode int  `json:"customer_code"`
	Role         Role `json:"role"`
	jwt.RegisteredClaims
}
