// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth checks HTTP basic auth credentials.

The application has a single user. When BASIC_AUTH_USER and
BASIC_AUTH_PASSWORD are both set, every route except /health asks for them:

	creds := auth.Credentials{Username: cfg.BasicAuthUser, Password: cfg.BasicAuthPass}
	if err := creds.Validate(user, pass); err != nil {
		// 401
	}

Comparison is constant time; both values are hashed with SHA-256 and
compared with hmac.Equal so their lengths do not leak either.
*/
package auth
