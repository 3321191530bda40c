// Package auth verifies bearer tokens issued by the configured identity
// provider.
//
// It contains three pieces:
//   - the role normalizer ([Normalize], [IsAllowed]) that filters raw role
//     claims against the fixed allow-list;
//   - [JWKSProvider], which keeps the issuer's published signing keys
//     fresh through jwkset and selects them with keyfunc;
//   - the [TokenVerifier] returned by [NewTokenVerifier], which checks
//     signature, issuer, audience and claim shape.
package auth
