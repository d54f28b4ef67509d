package command

import "strings"

// HasAt reports whether s looks like an email address for our purposes:
// it contains at least one @. No further validation is applied.
func HasAt(s string) bool {
	return strings.Contains(s, "@")
}

// Parse maps an already-tokenized subcommand and its arguments onto a
// Command. Patterns are tried in a fixed priority order so the specific
// subcommands win over the catch-all. Parse never fails: anything that does
// not match, including an email missing its @, falls through to Unrecognized.
//
// The CLI layer enforces required arguments and the kind/mode enumerations
// before calling Parse; the fallthroughs here only matter when Parse is
// handed input that bypassed those checks.
func Parse(sub string, args []string) Command {
	switch sub {
	case "health":
		return Healthcheck{}
	case "show":
		if len(args) == 1 {
			switch args[0] {
			case "people":
				return ShowPeople{}
			case "questionnaires":
				return ShowQuestionnaires{}
			}
		}
	case "delete":
		if len(args) == 1 && HasAt(args[0]) {
			return DeletePerson{Email: args[0]}
		}
	case "update":
		if len(args) == 3 && HasAt(args[2]) {
			id, email := args[0], args[2]
			switch args[1] {
			case "add":
				return AddPersonToQuestionnaire{QuestionnaireID: id, Email: email}
			case "remove":
				return RemovePersonFromQuestionnaire{QuestionnaireID: id, Email: email}
			}
		}
	case "create":
		if len(args) >= 1 && args[0] == "person" {
			if fields, ok := collectFields(args[1:]); ok {
				return CreatePerson{Fields: fields}
			}
		}
	}
	return Unrecognized{Raw: append([]string{sub}, args...)}
}

// collectFields turns consecutive "--key value" token pairs into a map.
// Later duplicate keys overwrite earlier ones. A dangling key with no value
// means the pair list is malformed, so ok is false and the caller falls
// through to Unrecognized.
func collectFields(tokens []string) (map[string]string, bool) {
	if len(tokens)%2 != 0 {
		return nil, false
	}
	fields := make(map[string]string, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		key := strings.TrimLeft(tokens[i], "-")
		if key == "" {
			return nil, false
		}
		fields[key] = tokens[i+1]
	}
	return fields, true
}
