// Package auth implements the Meetyfi authentication flow: signup with
// email verification via one-time codes, OTP based login, stateless JWT
// bearer tokens, and the authorization gate applied to protected requests.
//
// The flow is the following:
//
//  1. A user signs up with an email. A one-time code is stored on the
//     unverified record and emailed to the address.
//  2. The user verifies the email with the code; the record flips to
//     verified exactly once and the code is cleared.
//  3. On login, a fresh code is stored and emailed. Confirming it with
//     LoginConfirmHandler clears the code and mints a signed bearer token.
//  4. Protected requests pass through Gate.Authenticate, which validates
//     the token and resolves the user record behind its subject.
//
// All state lives in the external store; the handlers keep no in-process
// mutable state and are safe for concurrent use.
package auth
