package domain

// Claim keys embedded in issued tokens. Registered JWT claims (jti, iss, iat,
// exp) keep their standard names.
const (
	ClaimUserID          = "userId"
	ClaimUserType        = "userType"
	ClaimUserStatus      = "userStatus"
	ClaimUserFirstName   = "userFirstName"
	ClaimUserLastName    = "userLastName"
	ClaimUserEmail       = "userEmail"
	ClaimUserPhoneNumber = "userPhoneNumber"

	ClaimTokenID = "jti"
)

// Token is the issued credential pair. Immutable once constructed; produced
// only by the token service.
type Token struct {
	AccessToken          string
	AccessTokenExpiresAt int64
	RefreshToken         string
}
