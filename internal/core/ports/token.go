package ports

// Identity is the verified caller attached to a request by the auth
// middleware after decoding an access token.
type Identity struct {
	ID       string
	Username string
	Email    string
}

// AccessTokenDecoder is the capability the routing layer needs to turn a
// bearer token into an Identity. Kept separate from the token service's
// concrete type so the middleware depends only on this one method.
type AccessTokenDecoder interface {
	DecodeAccessToken(token string) (*Identity, error)
}
