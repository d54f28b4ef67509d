// Package config loads the .advisor settings file that declares the remote
// advisor instances this client can talk to. The raw file is validated
// against an embedded JSON schema before the instance registry is built, so
// shape problems surface as one config error instead of odd behavior later.
package config
