// Package render turns assessment result records into human-readable or
// machine-readable (JSON) output. The JSON key sets and the table layout are
// a compatibility contract with existing tooling; do not reorder or rename
// fields casually.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/faisalkhan91/bonsai-cli/cli/internal/assessment"
	"github.com/faisalkhan91/bonsai-cli/sdk/models"
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	Out  io.Writer
	JSON bool
	Test bool
}

func New(out io.Writer, jsonMode, test bool) *Renderer {
	return &Renderer{Out: out, JSON: jsonMode, Test: test}
}

// statusEnvelope is the common JSON shape of message-style responses.
func (r *Renderer) statusEnvelope(st models.APIStatus, message string) map[string]any {
	envelope := map[string]any{
		"status":        st.Status,
		"statusCode":    st.StatusCode,
		"statusMessage": message,
	}
	if r.Test {
		envelope["elapsed"] = st.Elapsed.String()
		envelope["timeTaken"] = st.TimeTaken.String()
	}
	return envelope
}

func (r *Renderer) emitJSON(v any) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(r.Out, err)
		return
	}
	fmt.Fprintln(r.Out, string(data))
}

// Start renders the outcome of a start command.
func (r *Renderer) Start(res *assessment.StartResult) {
	if r.JSON {
		r.emitJSON(r.statusEnvelope(res.APIStatus, res.Message()))
		return
	}
	fmt.Fprintln(r.Out, res.Message())
}

// List renders a listing as a table, or an informational message when the
// remote collection was empty.
func (r *Renderer) List(res *assessment.ListResult) {
	if r.JSON {
		rows := res.Rows
		if rows == nil {
			rows = []assessment.ListRow{}
		}
		envelope := map[string]any{
			"value":         rows,
			"status":        res.Status,
			"statusCode":    res.StatusCode,
			"statusMessage": "",
		}
		if r.Test {
			envelope["elapsed"] = res.Elapsed.String()
			envelope["timeTaken"] = res.TimeTaken.String()
		}
		r.emitJSON(envelope)
		return
	}

	if res.Empty {
		fmt.Fprintln(r.Out, res.Message())
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers("Assessment Name", "Status", "Description")
	for _, row := range res.Rows {
		t.Row(row.AssessmentName, string(row.Status), row.Description)
	}
	fmt.Fprintln(r.Out, t.Render())
}

// Show renders a single assessment.
func (r *Renderer) Show(res *assessment.ShowResult) {
	if r.JSON {
		r.emitJSON(map[string]any{
			"assessmentName": res.AssessmentName,
			"displayName":    res.DisplayName,
			"description":    res.Description,
			"status":         res.Status,
			"runTime":        res.RunTime,
			"concept":        res.Concept,
			"conceptLesson":  res.ConceptLesson,
			"createdOn":      res.CreatedOn,
			"modifiedOn":     res.ModifiedOn,
			"statusCode":     res.StatusCode,
			"statusMessage":  "",
		})
		return
	}

	fmt.Fprintf(r.Out, "Assessment Name: %s\n", res.AssessmentName)
	fmt.Fprintf(r.Out, "Display Name: %s\n", res.DisplayName)
	fmt.Fprintf(r.Out, "Description: %s\n", res.Description)
	fmt.Fprintf(r.Out, "Status: %s\n", res.Status)
	fmt.Fprintf(r.Out, "Run Time: %s\n", res.RunTime)
	fmt.Fprintf(r.Out, "Concept: %s\n", res.Concept)
	fmt.Fprintf(r.Out, "Concept Lesson: %d\n", res.ConceptLesson)
	fmt.Fprintf(r.Out, "Created On: %s\n", res.CreatedOn)
	fmt.Fprintf(r.Out, "Modified On: %s\n", res.ModifiedOn)
}

// Configuration renders the outcome of a get-configuration command: a save
// confirmation when the payload went to a file, the payload itself otherwise.
func (r *Renderer) Configuration(res *assessment.ConfigurationResult) {
	if res.SavedTo != "" {
		if r.JSON {
			r.emitJSON(r.statusEnvelope(res.APIStatus, res.Message()))
			return
		}
		fmt.Fprintln(r.Out, res.Message())
		return
	}

	if r.JSON {
		envelope := map[string]any{
			"status":        res.Status,
			"statusCode":    res.StatusCode,
			"configuration": res.Configuration,
		}
		if r.Test {
			envelope["elapsed"] = res.Elapsed.String()
			envelope["timeTaken"] = res.TimeTaken.String()
		}
		r.emitJSON(envelope)
		return
	}
	fmt.Fprintln(r.Out, string(res.Configuration))
}

// Update renders the outcome of an update command.
func (r *Renderer) Update(res *assessment.UpdateResult) {
	if r.JSON {
		r.emitJSON(r.statusEnvelope(res.APIStatus, res.Message()))
		return
	}
	fmt.Fprintln(r.Out, res.Message())
}

// Stop renders the outcome of a stop command.
func (r *Renderer) Stop(res *assessment.StopResult) {
	if r.JSON {
		r.emitJSON(r.statusEnvelope(res.APIStatus, res.Message()))
		return
	}
	fmt.Fprintln(r.Out, res.Message())
}

// Delete renders the outcome of a delete command. A declined confirmation
// produces no output at all.
func (r *Renderer) Delete(res *assessment.DeleteResult) {
	if !res.Deleted {
		return
	}
	if r.JSON {
		r.emitJSON(r.statusEnvelope(res.APIStatus, res.Message()))
		return
	}
	fmt.Fprintln(r.Out, res.Message())
}

// Error formats a fatal error for the terminal.
func Error(err error) string {
	return errorStyle.Render(fmt.Sprintf("Error: %v", err))
}

// Notice formats an advisory message, such as the newer-version hint.
func Notice(message string) string {
	return noticeStyle.Render(message)
}
