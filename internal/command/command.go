package command

// Command is one validated client operation. The set of implementations is
// closed: the unexported marker method keeps other packages from adding
// cases, so a dispatcher switching over the variants can be checked for
// totality by eye.
type Command interface {
	isCommand()
}

// Healthcheck probes that an instance is up.
type Healthcheck struct{}

// ShowPeople lists the person records held by an instance.
type ShowPeople struct{}

// ShowQuestionnaires lists the questionnaires held by an instance.
type ShowQuestionnaires struct{}

// DeletePerson removes the person record identified by Email.
type DeletePerson struct {
	Email string
}

// CreatePerson creates a person record from arbitrary key/value attributes.
type CreatePerson struct {
	Fields map[string]string
}

// AddPersonToQuestionnaire adds the person identified by Email to the given
// questionnaire.
type AddPersonToQuestionnaire struct {
	QuestionnaireID string
	Email           string
}

// RemovePersonFromQuestionnaire removes the person identified by Email from
// the given questionnaire.
type RemovePersonFromQuestionnaire struct {
	QuestionnaireID string
	Email           string
}

// Unrecognized is the fallback parse result. It is a valid Command, not an
// error: it signals that no pattern matched, carrying the raw tokens for
// diagnostics.
type Unrecognized struct {
	Raw []string
}

func (Healthcheck) isCommand()                   {}
func (ShowPeople) isCommand()                    {}
func (ShowQuestionnaires) isCommand()            {}
func (DeletePerson) isCommand()                  {}
func (CreatePerson) isCommand()                  {}
func (AddPersonToQuestionnaire) isCommand()      {}
func (RemovePersonFromQuestionnaire) isCommand() {}
func (Unrecognized) isCommand()                  {}
