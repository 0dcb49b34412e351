package guard

// IdentityCtxKey is the echo context key the middleware reads the requester
// identity from. Authentication is up to the embedding application: some
// upstream middleware is expected to set this key.
const IdentityCtxKey = "am-identity"
