package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/advisor-tools/advisor/internal/version"
)

// ErrMalformedResponse means the transport succeeded but the payload did not
// have the shape the operation expects.
var ErrMalformedResponse = errors.New("malformed response")

var printer = message.NewPrinter(language.English)

// person mirrors one record of the /admin/people response.
type person struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsMentor bool   `json:"is_mentor"`
}

// PeopleTable renders the raw JSON array returned by the people listing as an
// aligned table with a trailing count line.
func PeopleTable(raw string) (string, error) {
	var people []person
	if err := json.Unmarshal([]byte(raw), &people); err != nil {
		return "", fmt.Errorf("%w: parsing people listing: %v", ErrMalformedResponse, err)
	}

	var buf bytes.Buffer
	buf.WriteString("\n")
	w := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tEMAIL\tIS MENTOR")
	for _, p := range people {
		fmt.Fprintf(w, "%s\t%s\t%t\n", p.Name, p.Email, p.IsMentor)
	}
	w.Flush()

	noun := "people"
	if len(people) == 1 {
		noun = "person"
	}
	buf.WriteString(printer.Sprintf("%d %s", len(people), noun))

	return buf.String(), nil
}

// Health passes the healthcheck payload through, appending a compatibility
// note when the server reports a version older than we support.
func Health(raw string) string {
	if note := version.ServerNote(raw); note != "" {
		return raw + "\n" + note
	}
	return raw
}
