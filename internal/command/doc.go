// Package command defines the closed set of operations the advisor client can
// request, and the parser that maps tokenized CLI input onto them. A Command
// is a fully typed, validated user intent, independent of how it was entered;
// input that matches no known shape parses to Unrecognized rather than an
// error, and it is the dispatcher's job to reject that case.
package command
